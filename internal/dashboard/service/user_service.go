package service

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/repository"
	"ritual/pkg/mail"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUserById(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	// InviteUser creates an account with the given permission and mails an
	// invitation from the inviting admin.
	InviteUser(ctx context.Context, from string, email string, permission string) (model.User, error)
	// ChangePermission pro- or demotes a user. The last admin cannot be
	// demoted.
	ChangePermission(ctx context.Context, id string, permission string) error
	UpdateName(ctx context.Context, id string, name string) error
	SetPassword(ctx context.Context, id string, password string) error
	// DeleteUser removes a user. The last admin cannot be deleted.
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepository repository.UserRepository
	mailSender     mail.Sender
	loginURL       string
}

func (u *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("UserService.GetAllUsers: %w", err)
	}
	return users, nil
}

func (u *userService) GetUserById(ctx context.Context, id string) (model.User, error) {
	user, err := u.userRepository.GetUserById(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("UserService.GetUserById: %w", err)
	}
	return user, nil
}

func (u *userService) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := u.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("UserService.GetUserByEmail: %w", err)
	}
	return user, nil
}

func (u *userService) InviteUser(ctx context.Context, from string, email string, permission string) (model.User, error) {
	if !emailPattern.MatchString(email) {
		return model.User{}, fmt.Errorf("UserService.InviteUser: invalid email %q", email)
	}
	if !slices.Contains(model.Permissions, permission) {
		return model.User{}, fmt.Errorf("UserService.InviteUser: %q: %w", permission, apperrors.ErrInvalidPermission)
	}

	err := u.mailSender.SendMail(
		[]string{email},
		"You have been invited to join Ritual",
		generateInviteHTMLBody(from, permission, u.loginURL),
		generateInviteTextBody(from, permission, u.loginURL),
		nil,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("UserService.InviteUser: %w", err)
	}

	user, err := u.userRepository.CreateUser(ctx, model.User{
		Email:      email,
		Name:       email,
		Permission: permission,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("UserService.InviteUser: %w", err)
	}
	return user, nil
}

func (u *userService) ChangePermission(ctx context.Context, id string, permission string) error {
	if !slices.Contains(model.Permissions, permission) {
		return fmt.Errorf("UserService.ChangePermission: %q: %w", permission, apperrors.ErrInvalidPermission)
	}
	user, err := u.userRepository.GetUserById(ctx, id)
	if err != nil {
		return fmt.Errorf("UserService.ChangePermission: %w", err)
	}
	if user.Permission == permission {
		return fmt.Errorf("UserService.ChangePermission: %w", apperrors.ErrPermissionUnchanged)
	}
	if user.Permission == model.PermissionAdmin {
		adminCount, err := u.userRepository.CountUsersByPermission(ctx, model.PermissionAdmin)
		if err != nil {
			return fmt.Errorf("UserService.ChangePermission: %w", err)
		}
		if adminCount <= 1 {
			return fmt.Errorf("UserService.ChangePermission: %w", apperrors.ErrOnlyAdmin)
		}
	}
	_, err = u.userRepository.UpdateUser(ctx, model.User{ID: id, Permission: permission})
	if err != nil {
		return fmt.Errorf("UserService.ChangePermission: %w", err)
	}
	return nil
}

func (u *userService) UpdateName(ctx context.Context, id string, name string) error {
	if len(name) < 3 || len(name) > 40 {
		return fmt.Errorf("UserService.UpdateName: name must be between 3-40 characters")
	}
	_, err := u.userRepository.UpdateUser(ctx, model.User{ID: id, Name: name})
	if err != nil {
		return fmt.Errorf("UserService.UpdateName: %w", err)
	}
	return nil
}

func (u *userService) SetPassword(ctx context.Context, id string, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("UserService.SetPassword: %w", err)
	}
	_, err = u.userRepository.UpdateUser(ctx, model.User{ID: id, Password: string(hashed)})
	if err != nil {
		return fmt.Errorf("UserService.SetPassword: %w", err)
	}
	return nil
}

func (u *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := u.userRepository.GetUserById(ctx, id)
	if err != nil {
		return fmt.Errorf("UserService.DeleteUser: %w", err)
	}
	if user.Permission == model.PermissionAdmin {
		adminCount, err := u.userRepository.CountUsersByPermission(ctx, model.PermissionAdmin)
		if err != nil {
			return fmt.Errorf("UserService.DeleteUser: %w", err)
		}
		if adminCount <= 1 {
			return fmt.Errorf("UserService.DeleteUser: %w", apperrors.ErrOnlyAdmin)
		}
	}
	if err = u.userRepository.DeleteUserById(ctx, id); err != nil {
		return fmt.Errorf("UserService.DeleteUser: %w", err)
	}
	return nil
}

func generateInviteTextBody(from string, permission string, loginURL string) string {
	return fmt.Sprintf("%s has invited you to join Ritual with %s privileges.\nLogin at %s\n", from, permission, loginURL)
}

func generateInviteHTMLBody(from string, permission string, loginURL string) string {
	// Some clients auto-link the inviter's address; break it with
	// zero-width spaces so it renders as text.
	escaped := strings.ReplaceAll(from, ".", "&#8203;.")
	return fmt.Sprintf(`
<body>
    <p>%s has invited you to join Ritual with <strong>%s</strong> privileges.</p>
    <p><a href="%s">Login to accept</a></p>
</body>`, escaped, permission, loginURL)
}

func NewUserService(userRepository repository.UserRepository, mailSender mail.Sender, loginURL string) UserService {
	return &userService{
		userRepository: userRepository,
		mailSender:     mailSender,
		loginURL:       loginURL,
	}
}
