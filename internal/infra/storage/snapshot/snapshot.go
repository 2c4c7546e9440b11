package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// ErrDecode возвращается при ошибке разбора снимка из JSONB
var ErrDecode = errors.New("snapshot: failed to decode")

// classDocument JSON-представление занятия внутри корзины и бронирований.
// Имена полей совпадают с документами исходной коллекции yogaClasses.
type classDocument struct {
	ID          string `json:"id"`
	Comments    string `json:"comments"`
	CourseID    string `json:"courseId"`
	Date        string `json:"date"`
	TeacherName string `json:"teacherName"`
	DayOfWeek   string `json:"dayOfWeek"`
}

func toDocument(c domain.YogaClass) classDocument {
	doc := classDocument{
		ID:          c.ID,
		Comments:    c.Comments,
		CourseID:    c.CourseID,
		TeacherName: c.TeacherName,
		DayOfWeek:   string(c.DayOfWeek),
	}
	if !c.Date.IsZero() {
		doc.Date = c.Date.Format(domain.DateFormat)
	}
	return doc
}

func (d classDocument) toDomain() (domain.YogaClass, error) {
	class := domain.YogaClass{
		ID:          d.ID,
		Comments:    d.Comments,
		CourseID:    d.CourseID,
		TeacherName: d.TeacherName,
		DayOfWeek:   domain.DayOfWeek(d.DayOfWeek),
	}
	if d.Date != "" {
		date, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			return domain.YogaClass{}, fmt.Errorf("%w: class %s date %q: %v", ErrDecode, d.ID, d.Date, err)
		}
		class.Date = date
	}
	return class, nil
}

// EncodeClass сериализует снимок занятия для записи в JSONB колонку.
// Возвращает строку: lib/pq передаёт []byte как bytea, а не как jsonb.
func EncodeClass(c domain.YogaClass) (string, error) {
	b, err := json.Marshal(toDocument(c))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeClass разбирает снимок занятия из JSONB
func DecodeClass(data []byte) (domain.YogaClass, error) {
	var doc classDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.YogaClass{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return doc.toDomain()
}

// EncodeClasses сериализует список снимков занятий
func EncodeClasses(classes []domain.YogaClass) (string, error) {
	docs := make([]classDocument, 0, len(classes))
	for _, c := range classes {
		docs = append(docs, toDocument(c))
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeClasses разбирает список снимков занятий
func DecodeClasses(data []byte) ([]domain.YogaClass, error) {
	var docs []classDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	classes := make([]domain.YogaClass, 0, len(docs))
	for _, doc := range docs {
		class, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}
