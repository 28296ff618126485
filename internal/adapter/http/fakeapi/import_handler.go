package fakeapi

import (
	"net/http"
	"path/filepath"
	"strconv"

	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"

	"github.com/gin-gonic/gin"
)

// The double does not parse spreadsheets; it only checks the multipart
// shape and answers in the backend's format.

func uploadedName(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		abort(c, detail(http.StatusBadRequest, "Файл не передан"))
		return "", false
	}
	switch filepath.Ext(fh.Filename) {
	case ".xls", ".xlsx":
		return fh.Filename, true
	}
	abort(c, detail(http.StatusBadRequest, "Неверный формат файла. Пожалуйста, загрузите .xlsx или .xls"))
	return "", false
}

func importedEstimate(st *store, name string) entities.Estimate {
	id := st.id()
	e := &entities.Estimate{
		ID:             id,
		EstimateNumber: "ИМП-" + strconv.FormatInt(id, 10),
		ClientName:     name,
		Status:         lifecycle.NewEstimateStatus,
		CreatedAt:      entities.NewTimestamp(st.now().UTC()),
		Items:          []entities.EstimateItem{},
	}
	st.estimates[e.ID] = e
	return *e
}

func universalImport(c *gin.Context, st *store) {
	name, ok := uploadedName(c)
	if !ok {
		return
	}
	switch entities.ImportMode(c.PostForm("mode")) {
	case entities.ImportAsEstimate:
		c.JSON(http.StatusOK, importedEstimate(st, name))
	case entities.ImportToStock:
		report := entities.ImportReport{Created: []string{}, Updated: []string{}, Skipped: []string{}, Errors: []string{}}
		if c.PostForm("auto_create_new") == "true" {
			report.Created = append(report.Created, name)
		} else {
			report.Skipped = append(report.Skipped, name)
		}
		c.JSON(http.StatusOK, report)
	default:
		abort(c, errInvalidPayload)
	}
}

func import1C(c *gin.Context, st *store) {
	name, ok := uploadedName(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, importedEstimate(st, name))
}
