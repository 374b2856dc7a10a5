package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webbasics/gin-examples/config"
	"github.com/webbasics/gin-examples/utils"
)

const dotenvSetupHint = "create a .env file with API_BASE_URL and API_SECRET_KEY set, then restart the server"

// AnimalController holds the routes that call the external animal-data API.
type AnimalController struct {
	api *utils.AnimalAPI
}

func NewAnimalController(cfg config.AppConfig) *AnimalController {
	return &AnimalController{api: utils.NewAnimalAPI(cfg)}
}

// ProxyExample forwards the upstream response body unmodified. Failures are
// attached to the context and handled by the generic error middleware.
func (a *AnimalController) ProxyExample(ctx *gin.Context) {
	body, err := a.api.Fetch(ctx.Request.Context(), 10)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", body)
}

// DotenvExample is the same upstream call, but any failure is converted into a
// descriptive JSON error telling the operator how to configure the server.
func (a *AnimalController) DotenvExample(ctx *gin.Context) {
	body, err := a.api.Fetch(ctx.Request.Context(), 10)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, utils.ErrAPINotConfigured) {
			msg = dotenvSetupHint
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   msg,
		})
		return
	}
	ctx.Data(http.StatusOK, "application/json", body)
}

// ParameterExample extracts the animalId path parameter and forwards it to the
// upstream API as a query parameter.
func (a *AnimalController) ParameterExample(ctx *gin.Context) {
	animalID := ctx.Param("animalId")

	body, err := a.api.FetchByID(ctx.Request.Context(), animalID)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "wonderful",
		"message":  "here is the animal you asked for",
		"animalId": animalID,
		"animal":   json.RawMessage(body),
	})
}
