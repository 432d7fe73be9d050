package catalog

import (
	"slices"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// Копии для аксессоров: вызывающий код не должен достать до срезов и указателей каталога

func cloneService(s domain.Service) domain.Service {
	s.Highlights = slices.Clone(s.Highlights)
	s.RelatedServices = slices.Clone(s.RelatedServices)
	s.FAQ = slices.Clone(s.FAQ)
	return s
}

func cloneJob(j domain.JobListing) domain.JobListing {
	j.Responsibilities = slices.Clone(j.Responsibilities)
	j.Requirements = slices.Clone(j.Requirements)
	j.Benefits = slices.Clone(j.Benefits)
	if j.Salary != nil {
		salary := *j.Salary
		j.Salary = &salary
	}
	return j
}

func cloneTeamMember(m domain.TeamMember) domain.TeamMember {
	m.Languages = slices.Clone(m.Languages)
	m.SameAs = slices.Clone(m.SameAs)
	return m
}

func cloneProperty(p domain.Property) domain.Property {
	p.Images = slices.Clone(p.Images)
	p.Features = slices.Clone(p.Features)
	if p.Latitude != nil {
		lat := *p.Latitude
		p.Latitude = &lat
	}
	if p.Longitude != nil {
		lng := *p.Longitude
		p.Longitude = &lng
	}
	return p
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
