package usecase

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedFile = errors.New("only .xls and .xlsx files can be imported")
	ErrUnknownLayout   = errors.New("no known header row found in the file")
)

type IImportUseCase interface {
	Preview(fileName string, data []byte) (entities.SheetPreview, error)
	Import(ctx context.Context, fileName string, data []byte, opts interfaces.ImportOptions) (response.ImportResponse, error)
	Import1C(ctx context.Context, fileName string, data []byte) (entities.Estimate, error)
}

type ImportUseCase struct {
	imports   interfaces.IImportGateway
	inspector interfaces.ISpreadsheetInspector
	fb        Feedback
	log       log.FieldLogger
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(imports interfaces.IImportGateway, inspector interfaces.ISpreadsheetInspector, fb Feedback) *ImportUseCase {
	return &ImportUseCase{imports: imports, inspector: inspector, fb: fb, log: fb.logger("import")}
}

// Preview reads the header row and the first data rows locally.
func (u *ImportUseCase) Preview(fileName string, data []byte) (entities.SheetPreview, error) {
	if err := checkExtension(fileName); err != nil {
		return entities.SheetPreview{}, err
	}
	preview, err := u.inspector.Inspect(fileName, data)
	if err != nil {
		return entities.SheetPreview{}, err
	}
	if preview.Layout == "" {
		return entities.SheetPreview{}, ErrUnknownLayout
	}
	return preview, nil
}

// Import uploads a spreadsheet to the universal import. Files whose header
// row matches neither known layout are rejected before upload.
func (u *ImportUseCase) Import(ctx context.Context, fileName string, data []byte, opts interfaces.ImportOptions) (response.ImportResponse, error) {
	if opts.Mode != entities.ImportToStock && opts.Mode != entities.ImportAsEstimate {
		return response.ImportResponse{}, errors.Errorf("unknown import mode %q", opts.Mode)
	}
	preview, err := u.Preview(fileName, data)
	switch {
	case errors.Is(err, interfaces.ErrPreviewUnavailable):
		u.log.WithField("file", filepath.Base(fileName)).Debug("no local preview, uploading unchecked")
	case err != nil:
		return response.ImportResponse{}, err
	}
	var res response.ImportResponse
	err = u.fb.track("Importing "+filepath.Base(fileName), "Import finished", func() error {
		var err error
		res, err = u.imports.Universal(ctx, filepath.Base(fileName), bytes.NewReader(data), opts)
		return err
	})
	if err != nil {
		return response.ImportResponse{}, err
	}
	u.log.WithFields(log.Fields{
		"file":   filepath.Base(fileName),
		"mode":   opts.Mode,
		"layout": preview.Layout,
		"rows":   preview.RowCount,
	}).Info(res.Summary())
	return res, nil
}

// Import1C creates a draft estimate from a 1C export.
func (u *ImportUseCase) Import1C(ctx context.Context, fileName string, data []byte) (entities.Estimate, error) {
	if err := checkExtension(fileName); err != nil {
		return entities.Estimate{}, err
	}
	var e entities.Estimate
	err := u.fb.track("Importing 1C estimate", "Estimate imported", func() error {
		var err error
		e, err = u.imports.Estimate1C(ctx, filepath.Base(fileName), bytes.NewReader(data))
		return err
	})
	return e, err
}

func checkExtension(fileName string) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xls", ".xlsx":
		return nil
	}
	return ErrUnsupportedFile
}
