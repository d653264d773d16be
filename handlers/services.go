package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the store's service catalogue.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	services, err := h.Service.ListServices(c.Request.Context(), storeID, false)
	if err != nil {
		respondError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// PublicServicesHandler lists only active services for the booking page.
func (h *CatalogHandler) PublicServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), c.Param("storeID"), true)
	if err != nil {
		respondError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var input models.ServiceInput
	if !bindJSON(c, &input) {
		return
	}
	svc, err := h.Service.CreateService(c.Request.Context(), storeID, input)
	if err != nil {
		respondError(c, "create service", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service created", "service": svc})
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var input models.ServiceInput
	if !bindJSON(c, &input) {
		return
	}
	svc, err := h.Service.UpdateService(c.Request.Context(), storeID, c.Param("id"), input)
	if err != nil {
		respondError(c, "update service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated", "service": svc})
}

func (h *CatalogHandler) SetActiveHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var req models.SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.Service.SetActive(c.Request.Context(), storeID, c.Param("id"), *req.IsActive)
	if err != nil {
		respondError(c, "update service visibility", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}
