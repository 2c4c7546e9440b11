package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	catalogRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
	"github.com/m04kA/SMC-YogaStore/pkg/logger"
	"github.com/m04kA/SMC-YogaStore/pkg/ptr"
)

type fakeRepo struct {
	classes     []*domain.YogaClass
	courses     []*domain.YogaCourse
	instructors []*domain.Instructor
	filters     []domain.ClassFilter
	err         error
}

func (f *fakeRepo) GetClassByID(_ context.Context, id string) (*domain.YogaClass, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, catalogRepo.ErrClassNotFound
}

func (f *fakeRepo) SearchClasses(_ context.Context, filter domain.ClassFilter) ([]*domain.YogaClass, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.YogaClass, 0)
	for _, c := range f.classes {
		if filter.TeacherName != nil && c.TeacherName != *filter.TeacherName {
			continue
		}
		if filter.DayOfWeek != nil && c.DayOfWeek != *filter.DayOfWeek {
			continue
		}
		if filter.StartDate != nil && filter.EndDate == nil && !c.Date.Equal(*filter.StartDate) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeRepo) GetAllCourses(context.Context) ([]*domain.YogaCourse, error) {
	return f.courses, f.err
}

func (f *fakeRepo) GetCourseByID(_ context.Context, id string) (*domain.YogaCourse, error) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, catalogRepo.ErrCourseNotFound
}

func (f *fakeRepo) GetActiveInstructors(context.Context) ([]*domain.Instructor, error) {
	return f.instructors, f.err
}

func (f *fakeRepo) GetInstructorByID(_ context.Context, id string) (*domain.Instructor, error) {
	for _, i := range f.instructors {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, catalogRepo.ErrInstructorNotFound
}

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func newService() (*catalog.Service, *fakeRepo) {
	repo := &fakeRepo{
		classes: []*domain.YogaClass{
			{ID: "c1", TeacherName: "Sarah Johnson", DayOfWeek: domain.Monday, Date: day("2024-02-05")},
			{ID: "c2", TeacherName: "Michael Chen", DayOfWeek: domain.Tuesday, Date: day("2024-02-06")},
		},
		courses: []*domain.YogaCourse{
			{ID: "course-1", Type: domain.CourseFlow, Time: "09:00 AM", Price: 20},
		},
		instructors: []*domain.Instructor{
			{ID: "i1", Name: "Sarah Johnson", IsActive: true},
		},
	}
	return catalog.NewService(repo, logger.Nop()), repo
}

func TestService_GetClass(t *testing.T) {
	svc, _ := newService()

	class, err := svc.GetClass(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-05", class.Date)
	assert.Equal(t, "Monday", class.DayOfWeek)

	_, err = svc.GetClass(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrClassNotFound)
}

func TestService_SearchClasses_ValidationBeforeQuery(t *testing.T) {
	tests := []struct {
		name string
		req  models.SearchClassesRequest
	}{
		{name: "invalid day", req: models.SearchClassesRequest{DayOfWeek: ptr.Ptr("Funday")}},
		{name: "malformed start", req: models.SearchClassesRequest{StartDate: ptr.Ptr("05/02/2024")}},
		{name: "start after end", req: models.SearchClassesRequest{StartDate: ptr.Ptr("2024-02-07"), EndDate: ptr.Ptr("2024-02-01")}},
		{name: "unknown order", req: models.SearchClassesRequest{Order: ptr.Ptr("sideways")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()

			_, err := svc.SearchClasses(context.Background(), &tt.req)
			assert.ErrorIs(t, err, catalog.ErrInvalidInput)
			assert.Empty(t, repo.filters)
		})
	}
}

func TestService_SearchClasses_BuildsFilter(t *testing.T) {
	svc, repo := newService()

	_, err := svc.SearchClasses(context.Background(), &models.SearchClassesRequest{
		DayOfWeek: ptr.Ptr("monday"),
		StartDate: ptr.Ptr("2024-02-01"),
		EndDate:   ptr.Ptr("2024-02-07"),
		Order:     ptr.Ptr("DESC"),
	})
	require.NoError(t, err)

	require.Len(t, repo.filters, 1)
	f := repo.filters[0]
	assert.Equal(t, domain.Monday, *f.DayOfWeek)
	assert.Equal(t, day("2024-02-01"), *f.StartDate)
	assert.Equal(t, day("2024-02-07"), *f.EndDate)
	assert.Equal(t, domain.SortDesc, f.Order)
}

func TestService_SearchByDateRange_StartOnly(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.SearchByDateRange(context.Background(), "2024-02-06", nil)
	require.NoError(t, err)
	require.Len(t, resp.Classes, 1)
	assert.Equal(t, "c2", resp.Classes[0].ID)
	assert.Nil(t, repo.filters[0].EndDate)
}

func TestService_Search_FallsBackFromTeacherToDayToDate(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantIDs     []string
		wantQueries int
	}{
		{name: "teacher", query: "Sarah Johnson", wantIDs: []string{"c1"}, wantQueries: 1},
		{name: "day of week", query: "tuesday", wantIDs: []string{"c2"}, wantQueries: 2},
		{name: "date", query: "2024-02-05", wantIDs: []string{"c1"}, wantQueries: 2},
		{name: "nothing", query: "Nobody", wantIDs: []string{}, wantQueries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()

			resp, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]string, 0)
			for _, c := range resp.Classes {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, repo.filters, tt.wantQueries)
		})
	}
}

func TestService_Search_EmptyQuery(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestService_RepositoryFailureIsInternal(t *testing.T) {
	svc, repo := newService()
	repo.err = errors.New("connection refused")

	_, err := svc.ListClasses(context.Background())
	assert.ErrorIs(t, err, catalog.ErrInternal)

	_, err = svc.ListCourses(context.Background())
	assert.ErrorIs(t, err, catalog.ErrInternal)
}

func TestService_CoursesAndInstructors(t *testing.T) {
	svc, _ := newService()

	courses, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses.Courses, 1)
	assert.Equal(t, "FLOW", courses.Courses[0].Type)

	_, err = svc.GetCourse(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)

	instructors, err := svc.ListInstructors(context.Background())
	require.NoError(t, err)
	require.Len(t, instructors.Instructors, 1)
	assert.Equal(t, []string{}, instructors.Instructors[0].Specialties)

	_, err = svc.GetInstructor(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrInstructorNotFound)
}

func TestService_SearchClasses_TeacherNameIsExactMatch(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name    string
		teacher string
		wantIDs []string
	}{
		{name: "exact", teacher: "Sarah Johnson", wantIDs: []string{"c1"}},
		{name: "leading space", teacher: " Sarah Johnson", wantIDs: []string{}},
		{name: "trailing space", teacher: "Sarah Johnson ", wantIDs: []string{}},
		{name: "different case", teacher: "sarah johnson", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.SearchClasses(context.Background(), &models.SearchClassesRequest{TeacherName: ptr.Ptr(tt.teacher)})
			require.NoError(t, err)

			ids := make([]string, 0, len(resp.Classes))
			for _, c := range resp.Classes {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
