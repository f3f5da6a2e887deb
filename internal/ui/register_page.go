package ui

// RegisterPage wraps the /register screen.
type RegisterPage struct {
	*PageActions

	baseURL string
	url     string

	fullNameInput       string
	emailInput          string
	passwordInput       string
	passwordRepeatInput string
	submitButton        string
}

func NewRegisterPage(actions *PageActions, baseURL string) *RegisterPage {
	return &RegisterPage{
		PageActions: actions,
		baseURL:     baseURL,
		url:         baseURL + "/register",

		fullNameInput:       "[data-qa-id='register_full_name_input']",
		emailInput:          "[data-qa-id='register_email_input']",
		passwordInput:       "[data-qa-id='register_password_input']",
		passwordRepeatInput: "[data-qa-id='register_password_repeat_input']",
		submitButton:        "[data-qa-id='register_submit_button']",
	}
}

func (p *RegisterPage) Open() error {
	return p.PageActions.Open(p.url)
}

// Register fills the whole form and submits it.
func (p *RegisterPage) Register(fullName, email, password, passwordRepeat string) error {
	if err := p.Fill(p.fullNameInput, fullName); err != nil {
		return err
	}
	if err := p.Fill(p.emailInput, email); err != nil {
		return err
	}
	if err := p.Fill(p.passwordInput, password); err != nil {
		return err
	}
	if err := p.Fill(p.passwordRepeatInput, passwordRepeat); err != nil {
		return err
	}
	return p.Click(p.submitButton)
}

// AssertRedirectToLogin waits for the post-registration redirect.
func (p *RegisterPage) AssertRedirectToLogin() error {
	return p.ExpectURL(p.baseURL + "/login")
}

// AssertConfirmEmailPopup checks the "confirm your email" pop-up appears
// and then disappears.
func (p *RegisterPage) AssertConfirmEmailPopup() error {
	return p.ExpectPopup(confirmEmailPopupText)
}
