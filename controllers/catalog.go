package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marusalon-backend/config"
	"marusalon-backend/utils"
)

type CatalogController struct {
	catalog *config.Catalog
}

func NewCatalogController(catalog *config.Catalog) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetServices lists the salon's service menu
func (ctrl *CatalogController) GetServices(c *gin.Context) {
	utils.RespondWithData(c, http.StatusOK, ctrl.catalog.Services)
}

// GetStylists lists the stylist roster with specialties
func (ctrl *CatalogController) GetStylists(c *gin.Context) {
	utils.RespondWithData(c, http.StatusOK, ctrl.catalog.Stylists)
}
