package user

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateUserController struct {
	FindUserByUsernameRepository    usecase.FindUserByUsernameRepository
	FindUserByDeviceTokenRepository usecase.FindUserByDeviceTokenRepository
	CreateUserRepository            usecase.CreateUserRepository
	SavePhotoStorage                usecase.SavePhotoStorage
	Validate                        *validator.Validate
}

func NewCreateUserController(
	findByUsername usecase.FindUserByUsernameRepository,
	findByDeviceToken usecase.FindUserByDeviceTokenRepository,
	createUser usecase.CreateUserRepository,
	savePhoto usecase.SavePhotoStorage,
) *CreateUserController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateUserController{
		FindUserByUsernameRepository:    findByUsername,
		FindUserByDeviceTokenRepository: findByDeviceToken,
		CreateUserRepository:            createUser,
		SavePhotoStorage:                savePhoto,
		Validate:                        validate,
	}
}

type CreateUserControllerBody struct {
	Username    string `validate:"required,min=2,max=20"`
	DeviceToken string `validate:"required"`
}

type CreateUserControllerResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func (c *CreateUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if err := r.Req.ParseMultipartForm(10 << 20); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
		}, http.StatusBadRequest)
	}

	body := CreateUserControllerBody{
		Username:    r.Req.FormValue("username"),
		DeviceToken: r.Req.FormValue("deviceToken"),
	}

	photo, photoHeader, err := r.Req.FormFile("photo")
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Campos obrigatórios",
		}, http.StatusBadRequest)
	}
	defer photo.Close()

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	userExists, err := c.FindUserByUsernameRepository.Find(body.Username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao verificar usuário existente",
		}, http.StatusInternalServerError)
	}
	if userExists != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Usuário já existe",
		}, http.StatusBadRequest)
	}

	credential := models.NewCredential(body.DeviceToken)
	tokenExists, err := c.FindUserByDeviceTokenRepository.Find(credential.Digest())
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao verificar dispositivo existente",
		}, http.StatusInternalServerError)
	}
	if tokenExists != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Dispositivo já possui uma conta",
		}, http.StatusBadRequest)
	}

	photoPath, err := c.SavePhotoStorage.Save(photo, photoHeader)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao salvar foto",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.UserInput{
		Username:    body.Username,
		PhotoPath:   photoPath,
		DeviceToken: credential.Digest(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Erro interno ao criar usuário",
		}, http.StatusInternalServerError)
	}

	// models.User never serializes the credential digest, so the token is
	// stripped from the response by construction.
	return helpers.CreateResponse(&CreateUserControllerResponse{
		Message: "Usuário criado!",
		User:    user,
	}, http.StatusCreated)
}
