package domain

// CourseType is the style of a course
type CourseType string

const (
	CourseAerial CourseType = "AERIAL"
	CourseFlow   CourseType = "FLOW"
	CourseFamily CourseType = "FAMILY"
)

// IsValid returns true if the course type is known
func (t CourseType) IsValid() bool {
	return t == CourseAerial || t == CourseFlow || t == CourseFamily
}

// CourseTime is one of the fixed start time slots of a course
type CourseTime string

// CourseTimes lists the allowed start slots
var CourseTimes = []CourseTime{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM",
}

// IsValid returns true if the slot is one of CourseTimes
func (t CourseTime) IsValid() bool {
	for _, slot := range CourseTimes {
		if t == slot {
			return true
		}
	}
	return false
}

// YogaCourse is a recurring course offered by the studio. Read-only catalog item.
type YogaCourse struct {
	ID              string
	Capacity        int
	DayOfWeek       DayOfWeek
	Description     string
	DurationMinutes int
	Price           float64
	Time            CourseTime
	Type            CourseType
	TotalClasses    int
}
