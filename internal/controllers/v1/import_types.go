package v1

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/hearth-budget/backend/internal/importer"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// ImportSummary is the outcome of one import run.
type ImportSummary struct {
	Accepted int                    `json:"accepted"` // Number of transactions created
	Rejected []importer.RejectedRow `json:"rejected"` // Rows that were dropped, with line numbers and reasons
}

type ImportResponse struct {
	Data  *ImportSummary `json:"data"`  // The import summary
	Error *string        `json:"error"` // The error, if any occurred
}

// ImportQuery is the query string for the import endpoint.
type ImportQuery struct {
	Owner      string `form:"owner" binding:"required"`
	SkipHeader bool   `form:"skipHeader,default=true"`
}

// getUploadedFile returns the form file with a suffix from the list.
func getUploadedFile(c *gin.Context, suffixes []string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}
	if err != nil {
		return nil, err
	}

	match := slices.IndexFunc(suffixes, func(suffix string) bool {
		return strings.HasSuffix(formFile.Filename, suffix)
	})
	if match == -1 {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}
