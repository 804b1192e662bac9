package v1

import (
	"net/http"
	"slices"

	"github.com/hearth-budget/backend/internal/httputil"
	"github.com/hearth-budget/backend/internal/importer"
	"github.com/hearth-budget/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Imports a CSV or TSV spreadsheet export. Rows are normalized, match rules applied, unknown categories created, and accepted rows persisted as transactions. Rejected rows are reported with their line number and reason.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Failure		500			{object}	ImportResponse
// @Param			owner		query		string	true	"Owning user"
// @Param			skipHeader	query		bool	false	"Skip the first line of the file. Defaults to true."
// @Param			file		formData	file	true	"File to import"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query ImportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := errOwnerRequired.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	owner, err := uuid.Parse(query.Owner)
	if err != nil {
		s := errOwnerRequired.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	f, err := getUploadedFile(c, []string{".csv", ".tsv"})
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}
	defer f.Close()

	result, err := importer.Parse(f, query.SkipHeader)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	var rules []models.MatchRule
	err = models.DB.
		Where(&models.MatchRule{OwnerID: owner}).
		Order("priority ASC, match ASC").
		Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	summary := ImportSummary{Rejected: result.Rejected}

	for _, row := range result.Rows {
		category := matchCategory(rules, row)

		// Auto-create categories the owner has not registered yet
		err = models.DB.
			Where(&models.Category{OwnerID: owner, Name: category}).
			FirstOrCreate(&models.Category{OwnerID: owner, Name: category}).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResponse{Error: &s})
			return
		}

		transaction := models.Transaction{
			OwnerID:  owner,
			Date:     row.Date,
			Category: category,
			Place:    row.Place,
			Amount:   row.Amount,
			Person:   row.Person,
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			summary.Rejected = append(summary.Rejected, importer.RejectedRow{
				Line:   row.Line,
				Reason: err.Error(),
			})
			continue
		}

		summary.Accepted++
	}

	slices.SortFunc(summary.Rejected, func(a, b importer.RejectedRow) int {
		return a.Line - b.Line
	})

	c.JSON(http.StatusCreated, ImportResponse{Data: &summary})
}

// matchCategory applies the owner's match rules to an import row. Rules
// are checked in ascending priority order against the place field, the
// first match wins. Without a match the row keeps its own category.
func matchCategory(rules []models.MatchRule, row importer.Row) string {
	for _, rule := range rules {
		if glob.Glob(rule.Match, row.Place) {
			return rule.Category
		}
	}

	return row.Category
}
