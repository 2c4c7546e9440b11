package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Result количество импортированных документов
type Result struct {
	Classes     int
	Courses     int
	Instructors int
}

// Importer загружает экспорт коллекций каталога в хранилище
type Importer struct {
	writer    CatalogWriter
	txManager TransactionManager
	logger    Logger
	now       func() time.Time
}

// NewImporter создает импортёр каталога
func NewImporter(writer CatalogWriter, txManager TransactionManager, logger Logger) *Importer {
	return &Importer{
		writer:    writer,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// Decode читает файл экспорта
func Decode(r io.Reader) (*Export, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &export, nil
}

// Import проверяет все документы, затем записывает их в одной транзакции
// Ошибка в любом документе отменяет импорт целиком
func (i *Importer) Import(ctx context.Context, export *Export) (*Result, error) {
	now := i.now().UTC()

	instructors := export.Instructors
	courses := export.AllCourses()
	classes := export.AllClasses()

	i.logger.Info("Import: %d instructors, %d courses, %d classes in export",
		len(instructors), len(courses), len(classes))

	result := &Result{}
	err := i.txManager.Do(ctx, func(txCtx context.Context) error {
		for idx := range instructors {
			instructor, err := instructors[idx].ToDomain(now)
			if err != nil {
				return err
			}
			if err := i.writer.UpsertInstructor(txCtx, instructor); err != nil {
				return fmt.Errorf("%w: instructor %s: %v", ErrImport, instructor.ID, err)
			}
			result.Instructors++
		}

		for idx := range courses {
			course, err := courses[idx].ToDomain()
			if err != nil {
				return err
			}
			if err := i.writer.UpsertCourse(txCtx, course); err != nil {
				return fmt.Errorf("%w: course %s: %v", ErrImport, course.ID, err)
			}
			result.Courses++
		}

		for idx := range classes {
			class, err := classes[idx].ToDomain()
			if err != nil {
				return err
			}
			if err := i.writer.UpsertClass(txCtx, class); err != nil {
				return fmt.Errorf("%w: class %s: %v", ErrImport, class.ID, err)
			}
			result.Classes++
		}

		return nil
	})
	if err != nil {
		i.logger.Error("Import: failed, nothing was written: %v", err)
		return nil, err
	}

	i.logger.Info("Import: upserted %d instructors, %d courses, %d classes",
		result.Instructors, result.Courses, result.Classes)
	return result, nil
}
