package services

import (
	"gorm.io/gorm"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/pkg/email"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/sms"
)

// ServiceContainer wires every service once at startup.
type ServiceContainer struct {
	Auth          *AuthService
	Users         *UserService
	Cases         *CaseService
	Clients       *ClientService
	Events        *EventService
	Research      *ResearchService
	Rulings       *RulingService
	Activities    *ActivityService
	Organizations *OrganizationService
	Notifications *NotificationService

	Transport sms.Transport
	Email     email.Provider
}

// NewServiceContainer builds repositories and services over the shared
// database handle and the selected SMS transport.
func NewServiceContainer(db *gorm.DB, tokens *auth.TokenManager, transport sms.Transport, mail email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	caseRepo := repositories.NewCaseRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	researchRepo := repositories.NewResearchRepository(db)
	rulingRepo := repositories.NewRulingRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)

	notifications := NewNotificationService(transport, eventRepo, activityRepo)

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo, tokens),
		Users:         NewUserService(userRepo),
		Cases:         NewCaseService(caseRepo, clientRepo, userRepo, activityRepo, notifications),
		Clients:       NewClientService(clientRepo),
		Events:        NewEventService(eventRepo, caseRepo),
		Research:      NewResearchService(researchRepo, caseRepo),
		Rulings:       NewRulingService(rulingRepo),
		Activities:    NewActivityService(activityRepo),
		Organizations: NewOrganizationService(orgRepo, userRepo, mail),
		Notifications: notifications,
		Transport:     transport,
		Email:         mail,
	}
}
