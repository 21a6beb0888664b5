// Package auth implements the two-step challenge flow shared by login,
// registration and password reset: request a one-time code by email,
// then submit the code with the original form data. One state machine,
// parameterized by Mode, drives all three.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/logging"
)

// Mode selects which pair of endpoints the flow talks to.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
	ModeReset    Mode = "reset"
)

var (
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrNoPendingVerification = errors.New("no pending verification")
	ErrMissingIdentifier     = errors.New("pending form has no identifier")
)

// emailPattern is the standard lightweight check applied before any
// network call.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// internalServerErrorText is the generic backend string that gets
// remapped to a per-mode domain guess.
const internalServerErrorText = "Internal Server Error"

// FormData is a transient credential attempt from one of the three
// forms. Identifier is the login form's email field; Email is used by
// registration and reset. Registration is set only in register mode
// and is sent whole on sign-up.
type FormData struct {
	Identifier   string
	Email        string
	Password     string
	Registration *models.RegistrationForm
}

// EmailAddress returns whichever email-shaped field the form carries.
func (f FormData) EmailAddress() string {
	if f.Email != "" {
		return f.Email
	}
	return f.Identifier
}

// Pending is the live one-time-code challenge between the start and
// submit calls. At most one exists at a time.
type Pending struct {
	Email string
	Form  FormData
}

// Verifier is the transport subset the flow needs.
type Verifier interface {
	Start(ctx context.Context, path string, email string) (api.Outcome, error)
	Complete(ctx context.Context, path string, payload any) (api.Outcome, error)
}

// TokenWriter is the session surface the flow writes through. It is
// the single writer for the credential.
type TokenWriter interface {
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Notifier is the user-notice surface (the toast analog).
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// flowSpec maps a Mode to its endpoints, payload shape and messages.
type flowSpec struct {
	startPath       string
	completePath    string
	buildPayload    func(p *Pending, code any) (any, error)
	startFailure    string
	completeFailure string
	remapInternal   string
	successNotice   string
}

var flows = map[Mode]flowSpec{
	ModeLogin: {
		startPath:    api.PathStartLogin,
		completePath: api.PathSignInWithEmail,
		buildPayload: func(p *Pending, code any) (any, error) {
			if p.Form.Identifier == "" {
				return nil, ErrMissingIdentifier
			}
			return struct {
				Email    string `json:"email"`
				Password string `json:"password"`
				Code     any    `json:"code"`
			}{p.Form.Identifier, p.Form.Password, code}, nil
		},
		startFailure:    "Invalid email or password",
		completeFailure: "Invalid code",
		remapInternal:   "Invalid confirmation code",
		successNotice:   "Signed in",
	},
	ModeRegister: {
		startPath:    api.PathStartRegistration,
		completePath: api.PathSignUp,
		buildPayload: func(p *Pending, code any) (any, error) {
			if p.Form.Registration == nil {
				return nil, fmt.Errorf("%w: registration data", ErrNoPendingVerification)
			}
			return struct {
				models.RegistrationForm
				Code any `json:"code"`
			}{*p.Form.Registration, code}, nil
		},
		startFailure:    "Failed to send confirmation code",
		completeFailure: "Registration failed: invalid code or data",
		remapInternal:   "A user with this email already exists",
		successNotice:   "Account created",
	},
	ModeReset: {
		startPath:    api.PathStartResetPassword,
		completePath: api.PathResetPassword,
		buildPayload: func(p *Pending, code any) (any, error) {
			return struct {
				Email       string `json:"email"`
				NewPassword string `json:"newPassword"`
				Code        any    `json:"code"`
			}{p.Email, p.Form.Password, code}, nil
		},
		startFailure:    "User not found",
		completeFailure: "Verification failed",
		remapInternal:   "Invalid code or unsuitable password",
		successNotice:   "Password has been reset",
	},
}

// Flow is the auth/verification state machine. It is either idle (no
// pending challenge) or code-requested (one pending challenge). All
// server failures keep the current state so the user may retry.
type Flow struct {
	client  Verifier
	session TokenWriter
	notify  Notifier
	log     logging.Logger

	mode         Mode
	pending      *Pending
	failedLogins int
}

func NewFlow(client Verifier, session TokenWriter, notify Notifier, log logging.Logger) *Flow {
	return &Flow{
		client:  client,
		session: session,
		notify:  notify,
		log:     log,
		mode:    ModeLogin,
	}
}

func (f *Flow) Mode() Mode { return f.mode }

// Pending returns the live challenge, or nil while idle.
func (f *Flow) Pending() *Pending { return f.pending }

// FailedLoginAttempts counts consecutive failed login starts. The UI
// offers the password-reset affordance after more than 2.
func (f *Flow) FailedLoginAttempts() int { return f.failedLogins }

// SwitchMode selects the active flow. A switch to a different flow
// abandons any pending challenge; re-selecting the current one keeps
// it, so a repeated start command still hits the already-sent guard.
func (f *Flow) SwitchMode(m Mode) {
	if _, ok := flows[m]; !ok {
		return
	}
	if m == f.mode {
		return
	}
	f.pending = nil
	f.mode = m
}

// RequestCode validates the email and asks the server to send a
// one-time code. If a challenge is already pending the call is
// rejected locally with an informational notice and no request is
// issued. Server and transport failures surface as notices and leave
// the flow idle; for login mode they also bump the failed-attempt
// counter.
func (f *Flow) RequestCode(ctx context.Context, form FormData) error {
	if f.pending != nil {
		f.notify.Info("A code was already sent to " + f.pending.Email + "; enter it to continue")
		return nil
	}

	email := form.EmailAddress()
	if !emailPattern.MatchString(email) {
		f.notify.Error("Please enter a valid email address")
		return ErrInvalidEmail
	}

	spec := flows[f.mode]

	out, err := f.client.Start(ctx, spec.startPath, email)
	if err != nil {
		f.log.Warn(ctx, "request code failed", "mode", f.mode, "err", err)
		f.noteStartFailure(spec, "")
		return nil
	}
	if !out.Success() {
		f.noteStartFailure(spec, out.Message)
		return nil
	}

	f.pending = &Pending{Email: email, Form: form}
	if f.mode == ModeLogin {
		f.failedLogins = 0
	}

	msg := out.Message
	if msg == "" {
		msg = "Confirmation code sent to " + email
	}
	f.notify.Success(msg)
	return nil
}

func (f *Flow) noteStartFailure(spec flowSpec, serverMsg string) {
	if f.mode == ModeLogin {
		f.failedLogins++
	}
	msg := serverMsg
	if msg == "" {
		msg = spec.startFailure
	}
	f.notify.Error(msg)
}

// SubmitCode completes the pending challenge. The code is sent as an
// integer when it parses as one, verbatim otherwise; the server is the
// source of truth for rejecting it. On success the pending state is
// cleared, any returned token is persisted, and the mode resets to
// login. On failure the challenge stays alive for a retry.
func (f *Flow) SubmitCode(ctx context.Context, code string) error {
	if f.pending == nil {
		return ErrNoPendingVerification
	}

	spec := flows[f.mode]

	payload, err := spec.buildPayload(f.pending, parseCode(code))
	if err != nil {
		return err
	}

	out, err := f.client.Complete(ctx, spec.completePath, payload)
	if err != nil {
		f.log.Warn(ctx, "submit code failed", "mode", f.mode, "err", err)
		f.notify.Error(spec.completeFailure)
		return nil
	}
	if !out.Success() {
		msg := out.Message
		switch msg {
		case internalServerErrorText:
			msg = spec.remapInternal
		case "":
			msg = spec.completeFailure
		}
		f.notify.Error(msg)
		return nil
	}

	if out.Token != "" {
		if err := f.session.SetToken(ctx, out.Token); err != nil {
			return fmt.Errorf("storing session token: %w", err)
		}
	}
	f.pending = nil
	f.mode = ModeLogin

	msg := out.Message
	if msg == "" {
		msg = spec.successNotice
	}
	f.notify.Success(msg)
	return nil
}

// Logout clears the persisted token and resets the flow to its
// defaults. No network call is made.
func (f *Flow) Logout(ctx context.Context) error {
	if err := f.session.Clear(ctx); err != nil {
		return err
	}
	f.pending = nil
	f.mode = ModeLogin
	f.failedLogins = 0
	return nil
}

// parseCode converts a code to an int when possible; non-numeric input
// passes through unchanged.
func parseCode(code string) any {
	if n, err := strconv.Atoi(code); err == nil {
		return n
	}
	return code
}
