package ui

// Texts the frontend renders in its transient notifications. Product copy,
// matched verbatim.
const (
	loggedInPopupText     = "Вы вошли в аккаунт"
	confirmEmailPopupText = "Подтвердите свою почту"
)

// LoginPage wraps the /login screen.
type LoginPage struct {
	*PageActions

	baseURL string
	url     string

	emailInput    string
	passwordInput string
	submitButton  string
}

func NewLoginPage(actions *PageActions, baseURL string) *LoginPage {
	return &LoginPage{
		PageActions: actions,
		baseURL:     baseURL,
		url:         baseURL + "/login",

		emailInput:    "[data-qa-id='login_email_input']",
		passwordInput: "[data-qa-id='login_password_input']",
		submitButton:  "[data-qa-id='login_submit_button']",
	}
}

func (p *LoginPage) Open() error {
	return p.PageActions.Open(p.url)
}

// Login fills the form and submits it.
func (p *LoginPage) Login(email, password string) error {
	if err := p.Fill(p.emailInput, email); err != nil {
		return err
	}
	if err := p.Fill(p.passwordInput, password); err != nil {
		return err
	}
	return p.Click(p.submitButton)
}

// AssertRedirectToHome waits for the post-login redirect to the home page.
func (p *LoginPage) AssertRedirectToHome() error {
	return p.ExpectURL(p.baseURL + "/")
}

// AssertLoggedInPopup checks the login confirmation pop-up appears and
// then disappears.
func (p *LoginPage) AssertLoggedInPopup() error {
	return p.ExpectPopup(loggedInPopupText)
}
