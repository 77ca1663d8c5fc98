package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

type IssueCertificateRequest struct {
	ModuleID uint `json:"moduleId" binding:"required"`
}

// @Summary Issue (or return) the caller's certificate for a module
// @Tags certificate
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body IssueCertificateRequest true "module"
// @Success 200 {object} util.Response
// @Router /certificate [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CertificateService.Issue(user.UserID, req.ModuleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary List the caller's certificates
// @Tags certificate
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertificateService.ListByUser(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// @Summary Verify a certificate by its public code
// @Tags certificate
// @Produce json
// @Param code path string true "certificate code"
// @Success 200 {object} util.Response
// @Router /certificate/verify/{code} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		util.BadRequest(ctx, "missing certificate code")
		return
	}

	result, err := c.CertificateService.Verify(code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
