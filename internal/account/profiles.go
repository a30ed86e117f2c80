package account

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/notify"
)

// PathProfile serves both profile reads and updates.
const PathProfile = "/api/user/profile"

// Notification keys
const (
	KeyProfileLoadError      = "toasts.generalError"
	KeyProfileUpdateSuccess  = "profile.updateSuccess"
	KeyProfileUpdateError    = "profile.updateError"
	KeyPasswordChangeSuccess = "profile.passwordChangeSuccess"
	KeyPasswordChangeError   = "profile.passwordChangeError"
)

// Fallback messages
const (
	MsgProfileLoadFailed   = "Failed to fetch profile"
	MsgProfileUpdateFailed = "Failed to update profile"
	MsgPasswordFailed      = "Failed to change password"
)

// ProfileUpdate is the editable part of the profile.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordChange is the change-password request.
type PasswordChange struct {
	Current      string `json:"current_password"`
	New          string `json:"password"`
	Confirmation string `json:"password_confirmation"`
}

// Profiles reads and edits the signed-in user's profile.
type Profiles struct {
	service
}

// NewProfiles creates the profile service.
func NewProfiles(deps Deps) *Profiles {
	return &Profiles{service: newService(deps, "profiles")}
}

// Get fetches the current profile.
func (p *Profiles) Get(ctx context.Context) (*domain.UserRecord, error) {
	if err := p.requireToken(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := p.api.Get(ctx, PathProfile, &raw); err != nil {
		return nil, p.fail(ctx, "profile.get", KeyProfileLoadError, MsgProfileLoadFailed, err)
	}
	user, err := decodeUser(raw)
	if err != nil {
		return nil, p.fail(ctx, "profile.get", KeyProfileLoadError, MsgProfileLoadFailed, err)
	}
	return user, nil
}

// Update saves name and email and returns the updated record.
func (p *Profiles) Update(ctx context.Context, update ProfileUpdate) (*domain.UserRecord, error) {
	if err := p.requireToken(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := p.api.Put(ctx, PathProfile, update, &raw); err != nil {
		return nil, p.fail(ctx, "profile.update", KeyProfileUpdateError, MsgProfileUpdateFailed, err)
	}
	user, err := decodeUser(raw)
	if err != nil {
		return nil, p.fail(ctx, "profile.update", KeyProfileUpdateError, MsgProfileUpdateFailed, err)
	}

	p.notifier.Notify(ctx, notify.Success(KeyProfileUpdateSuccess))
	return user, nil
}

// ChangePassword sets a new password. The response body is not used.
func (p *Profiles) ChangePassword(ctx context.Context, change PasswordChange) error {
	if err := p.requireToken(); err != nil {
		return err
	}

	if err := p.api.Put(ctx, PathProfile, change, nil); err != nil {
		return p.fail(ctx, "profile.password", KeyPasswordChangeError, MsgPasswordFailed, err)
	}

	p.notifier.Notify(ctx, notify.Success(KeyPasswordChangeSuccess))
	return nil
}

// decodeUser accepts {data: user}, {user: user} or a bare user.
func decodeUser(raw json.RawMessage) (*domain.UserRecord, error) {
	user, err := api.Unwrap[domain.UserRecord](raw, "data", "user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}
