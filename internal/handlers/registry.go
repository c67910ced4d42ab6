package handlers

import (
	"legalassist_backend/internal/services"
	"legalassist_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Cases         *CaseHandler
	Clients       *ClientHandler
	Events        *EventHandler
	Research      *ResearchHandler
	Rulings       *RulingHandler
	Organizations *OrganizationHandler
	Notifications *NotificationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:          NewAuthHandler(base, sc.Auth, sc.Users),
		Users:         NewUserHandler(base, sc.Users, sc.Activities),
		Cases:         NewCaseHandler(base, sc.Cases),
		Clients:       NewClientHandler(base, sc.Clients),
		Events:        NewEventHandler(base, sc.Events),
		Research:      NewResearchHandler(base, sc.Research),
		Rulings:       NewRulingHandler(base, sc.Rulings),
		Organizations: NewOrganizationHandler(base, sc.Organizations),
		Notifications: NewNotificationHandler(base, sc.Notifications, sc.Users, sc.Cases, sc.Transport),
	}
}
