package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	notificationDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/dto"
	notificationModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/model"
	militaryDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/dto"
	militaryModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
	unavailabilityDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/dto"
	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	typeDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/dto"
	typeModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"
	scaleDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/dto"
	scaleModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
	configurationDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/dto"
	configurationModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/model"
	userDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/dto"
	userModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type BootstrapController struct {
	DB *gorm.DB
}

func NewBootstrapController(db *gorm.DB) *BootstrapController {
	return &BootstrapController{DB: db}
}

// BootstrapResponse é a carga inicial completa do painel em uma só chamada.
type BootstrapResponse struct {
	Scales              []scaleDTO.ScaleResponse                   `json:"scales"`
	Militaries          []militaryDTO.MilitaryResponse             `json:"militaries"`
	Unavailabilities    []unavailabilityDTO.UnavailabilityResponse `json:"unavailabilities"`
	UnavailabilityTypes []typeDTO.UnavailabilityTypeResponse       `json:"unavailability_types"`
	Users               []userDTO.UserResponse                     `json:"users"`
	Configurations      []configurationDTO.ConfigurationResponse   `json:"configurations"`
	Notifications       []notificationDTO.NotificationResponse     `json:"notifications"`
	ActiveScaleID       *string                                    `json:"active_scale_id"`
}

// GET /api/u/bootstrap
//
// As coleções são lidas em paralelo. Falha em uma coleção não derruba a
// resposta: o bloco vem vazio e o erro fica no log, para o painel abrir
// mesmo com o banco parcialmente degradado.
func (ctl *BootstrapController) Bootstrap(c *fiber.Ctx) error {
	var (
		scales        []scaleModel.ScaleModel
		services      []scaleModel.ServiceModel
		reservations  []scaleModel.ReservationModel
		militaries    []militaryModel.MilitaryModel
		unavails      []unavailabilityModel.UnavailabilityModel
		types         []typeModel.UnavailabilityTypeModel
		users         []userModel.UserModel
		configs       []configurationModel.ConfigurationModel
		notifications []notificationModel.NotificationModel
	)

	var g errgroup.Group
	g.Go(ctl.load("scales", func(db *gorm.DB) error {
		return db.Order("name asc").Find(&scales).Error
	}))
	g.Go(ctl.load("services", func(db *gorm.DB) error {
		return db.Find(&services).Error
	}))
	g.Go(ctl.load("reservations", func(db *gorm.DB) error {
		return db.Find(&reservations).Error
	}))
	g.Go(ctl.load("militaries", func(db *gorm.DB) error {
		return db.Order("name asc").Find(&militaries).Error
	}))
	g.Go(ctl.load("unavailabilities", func(db *gorm.DB) error {
		return db.Find(&unavails).Error
	}))
	g.Go(ctl.load("unavailability_types", func(db *gorm.DB) error {
		return db.Order("name asc").Find(&types).Error
	}))
	g.Go(ctl.load("users", func(db *gorm.DB) error {
		return db.Order("user_name asc").Find(&users).Error
	}))
	g.Go(ctl.load("configurations", func(db *gorm.DB) error {
		return db.Order("key asc").Find(&configs).Error
	}))
	g.Go(ctl.load("notifications", func(db *gorm.DB) error {
		return db.Order("created_at desc").Limit(50).Find(&notifications).Error
	}))
	_ = g.Wait() // erros já tratados por coleção

	resp := BootstrapResponse{
		Scales:              make([]scaleDTO.ScaleResponse, 0, len(scales)),
		Militaries:          make([]militaryDTO.MilitaryResponse, 0, len(militaries)),
		Unavailabilities:    make([]unavailabilityDTO.UnavailabilityResponse, 0, len(unavails)),
		UnavailabilityTypes: make([]typeDTO.UnavailabilityTypeResponse, 0, len(types)),
		Users:               make([]userDTO.UserResponse, 0, len(users)),
		Configurations:      make([]configurationDTO.ConfigurationResponse, 0, len(configs)),
		Notifications:       make([]notificationDTO.NotificationResponse, 0, len(notifications)),
	}

	for i := range scales {
		resp.Scales = append(resp.Scales, scaleDTO.NewScaleResponse(&scales[i], services, reservations))
	}
	for i := range militaries {
		resp.Militaries = append(resp.Militaries, militaryDTO.NewMilitaryResponse(&militaries[i]))
	}
	for i := range unavails {
		resp.Unavailabilities = append(resp.Unavailabilities, unavailabilityDTO.NewUnavailabilityResponse(&unavails[i]))
	}
	for i := range types {
		resp.UnavailabilityTypes = append(resp.UnavailabilityTypes, typeDTO.NewUnavailabilityTypeResponse(&types[i]))
	}
	for i := range users {
		resp.Users = append(resp.Users, userDTO.NewUserResponse(&users[i]))
	}
	for i := range configs {
		resp.Configurations = append(resp.Configurations, configurationDTO.NewConfigurationResponse(&configs[i]))
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, notificationDTO.NewNotificationResponse(&notifications[i]))
	}

	if len(resp.Scales) > 0 {
		resp.ActiveScaleID = &resp.Scales[0].ID
	}

	return helper.Success(c, "OK", resp)
}

// load embrulha a leitura de uma coleção: loga e engole o erro para a
// resposta degradar em vez de falhar.
func (ctl *BootstrapController) load(name string, fn func(db *gorm.DB) error) func() error {
	return func() error {
		if err := fn(ctl.DB.Session(&gorm.Session{})); err != nil {
			log.Printf("[WARN] bootstrap: coleção %s indisponível: %v", name, err)
		}
		return nil
	}
}
