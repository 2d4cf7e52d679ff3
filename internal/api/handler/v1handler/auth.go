package v1handler

import (
	"context"
	"fmt"
	"library/internal/api/specs/v1specs"
	"library/internal/library"
)

func (h *Handler) Register(ctx context.Context, req *v1specs.RegisterRequest) (*v1specs.RegisterCreated, error) {
	user, err := h.library.Register(ctx, library.RegisterInput{
		StudentID: req.StudentId,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &v1specs.RegisterCreated{
		Message: "Registration successful",
		Data:    DomainUserToV1Specs(user),
	}, nil
}

func (h *Handler) Login(ctx context.Context, req *v1specs.LoginRequest) (*v1specs.LoginOK, error) {
	user, err := h.library.Login(ctx, req.StudentId, req.Password)
	if err != nil {
		return nil, err
	}

	signed, err := h.issuer.Issue(user.ID, h.cookie.TTL)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &v1specs.LoginOK{
		SetCookie: h.sessionCookie(signed),
		Message:   "Login successful",
		Data:      DomainUserToV1Specs(user),
	}, nil
}

func (h *Handler) Logout(context.Context) (*v1specs.LogoutOK, error) {
	return &v1specs.LogoutOK{
		SetCookie: h.clearCookie(),
		Message:   "Logout successful",
	}, nil
}

func (h *Handler) Me(ctx context.Context) (*v1specs.UserOK, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.library.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &v1specs.UserOK{Data: DomainUserToV1Specs(user)}, nil
}
