package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/HemInfotech/hem_api/internal/utils"
)

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrQuotationNotFound):
		utils.Error(c, 404, "QUOTATION_NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrClientNotFound):
		utils.Error(c, 404, "CLIENT_NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrPackageNotFound):
		utils.Error(c, 404, "PACKAGE_NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrInvalidClient), errors.Is(err, utils.ErrInvalidCustomType):
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
	case errors.Is(err, utils.ErrDocumentDisabled):
		utils.Error(c, 501, "NOT_IMPLEMENTED", err.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Str("request_id", c.GetString("request_id")).Msg("Request failed")
		utils.Error(c, 500, "INTERNAL_ERROR", err.Error())
	}
}

// pathID parses a positive integer path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.Error(c, 400, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
