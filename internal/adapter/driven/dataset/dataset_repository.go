package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/diillson/shipping-report/internal/domain/repository"
	"github.com/diillson/shipping-report/internal/domain/table"
	"github.com/diillson/shipping-report/internal/shared/types"
)

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais
// e objetos S3.
type DatasetRepositoryImpl struct {
	s3 *s3Source
}

// Option configura o DatasetRepositoryImpl.
type Option func(*DatasetRepositoryImpl)

// WithObjectGetter substitui o cliente S3, usado em testes.
func WithObjectGetter(getter ObjectGetter) Option {
	return func(r *DatasetRepositoryImpl) {
		r.s3.client = getter
	}
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository(opts ...Option) repository.DatasetRepository {
	r := &DatasetRepositoryImpl{s3: newS3Source()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load lê o arquivo indicado por location. Arquivos .xlsx são lidos da
// primeira planilha; qualquer outro é tratado como texto delimitado.
func (r *DatasetRepositoryImpl) Load(ctx context.Context, location string, opts types.LoadOptions) (*table.Table, error) {
	var (
		data []byte
		err  error
	)

	if isS3URI(location) {
		data, err = r.s3.fetch(ctx, location, opts.Profile)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", location, err)
		}
	} else {
		data, err = readLocal(location)
		if err != nil {
			return nil, err
		}
	}

	var tbl *table.Table
	switch strings.ToLower(path.Ext(location)) {
	case ".xlsx":
		tbl, err = parseXLSX(bytes.NewReader(data))
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls workbooks, save as .xlsx: %s", types.ErrUnsupportedFormat, location)
	default:
		delimiter := opts.Delimiter
		if delimiter == 0 {
			delimiter = ','
		}
		tbl, err = parseDelimited(bytes.NewReader(data), delimiter)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", location, err)
	}
	return tbl, nil
}

func readLocal(location string) ([]byte, error) {
	fileInfo, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("error accessing data file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}
	return data, nil
}
