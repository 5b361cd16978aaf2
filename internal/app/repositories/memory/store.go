// Package memory holds an in-memory implementation of the repository
// surfaces, used by tests and local experiments. It reproduces the storage
// semantics of the SQL layer: next-id assignment as max+1 starting at 0,
// unique student emails, and one enrollment per (student, course) pair.
package memory

import (
	"sort"
	"sync"

	"github.com/campusreg/studentregistration/internal/app/models"
)

// Store is the shared state behind the in-memory repositories.
type Store struct {
	mu          sync.RWMutex
	students    map[int64]*models.Student
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		students:    make(map[int64]*models.Student),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
	}
}

// Students returns a student repository over this store.
func (s *Store) Students() *StudentRepository {
	return &StudentRepository{store: s}
}

// Courses returns a course repository over this store.
func (s *Store) Courses() *CourseRepository {
	return &CourseRepository{store: s}
}

// Enrollments returns an enrollment repository over this store.
func (s *Store) Enrollments() *EnrollmentRepository {
	return &EnrollmentRepository{store: s}
}

// nextID mimics the SQL id assignment: max existing id plus one, zero when
// the table is empty.
func nextID[V any](m map[int64]V) int64 {
	next := int64(0)
	for id := range m {
		if id+1 > next {
			next = id + 1
		}
	}
	return next
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// average mirrors SQL AVG: nil grades are skipped, all-nil yields nil.
func average(grades []*float64) *float64 {
	var sum float64
	var n int
	for _, g := range grades {
		if g != nil {
			sum += *g
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
