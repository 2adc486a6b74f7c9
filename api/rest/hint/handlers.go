package hint

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"codeberg.org/antivibe/antivibe/internal/catalog"
	"codeberg.org/antivibe/antivibe/internal/errors"
	"codeberg.org/antivibe/antivibe/internal/hints"
	"codeberg.org/antivibe/antivibe/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Generate a hint
// @Description Classifies the problem and returns a canned hint for the requested level
// @Tags hints
// @Accept json
// @Produce json
// @Param request body hints.WireRequest true "Hint request"
// @Success 200 {object} hints.WireResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/hint [post]
func Handler(generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req hints.WireRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			var syntaxErr *json.SyntaxError
			if stderrors.As(err, &syntaxErr) || stderrors.Is(err, io.EOF) {
				errors.BadRequest(c, "request body must be a JSON object", err)
				return
			}

			errors.ValidationError(c, err)
			return
		}

		resp, problemType := generator.Generate(hints.DecodeRequest(req))

		logger.FromContext(c.Request.Context()).Info("hint generated",
			"problem_type", problemType,
			"hint_level", req.HintLevel,
			"has_error_message", req.ErrorMessage != "",
		)

		c.Header(hints.ContractHeader, hints.ContractVersion)
		c.JSON(http.StatusOK, hints.EncodeResponse(resp))
	}
}

// ProblemTypesHandler godoc
// @Summary List problem types
// @Tags hints
// @Produce json
// @Success 200 {object} ProblemTypesResponse
// @Router /api/problem-types [get]
func ProblemTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ProblemTypesResponse{
		ProblemTypes: catalog.ProblemTypes(),
	})
}
