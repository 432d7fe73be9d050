package catalog

import (
	"errors"
	"fmt"
)

// Validate проверяет уникальность id и slug внутри каждого каталога
// и то, что все перекрестные ссылки разрешаются
func Validate() error {
	var errs []error
	check := func(kind, key string, seen map[string]bool) {
		if key == "" {
			errs = append(errs, fmt.Errorf("%s: empty key", kind))
			return
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate key %q", kind, key))
		}
		seen[key] = true
	}

	propertyIDs := map[string]bool{}
	for _, p := range properties {
		check("property id", p.ID, propertyIDs)
	}

	serviceIDs, serviceSlugs := map[string]bool{}, map[string]bool{}
	for _, s := range services {
		check("service id", s.ID, serviceIDs)
		check("service slug", s.Slug, serviceSlugs)
	}
	for _, s := range services {
		for _, ref := range s.RelatedServices {
			if !serviceIDs[ref] {
				errs = append(errs, fmt.Errorf("service %s: related service %q does not exist", s.ID, ref))
			}
		}
	}

	teamIDs := map[string]bool{}
	for _, m := range teamMembers {
		check("team member id", m.ID, teamIDs)
	}

	testimonialIDs := map[string]bool{}
	for _, t := range testimonials {
		check("testimonial id", t.ID, testimonialIDs)
		if t.PropertyID != "" && !propertyIDs[t.PropertyID] {
			errs = append(errs, fmt.Errorf("testimonial %s: property %q does not exist", t.ID, t.PropertyID))
		}
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %s: rating %d out of range", t.ID, t.Rating))
		}
	}

	jobIDs, jobSlugs := map[string]bool{}, map[string]bool{}
	for _, j := range jobs {
		check("job id", j.ID, jobIDs)
		check("job slug", j.Slug, jobSlugs)
	}

	faqIDs := map[string]bool{}
	for _, f := range faqs {
		check("faq id", f.ID, faqIDs)
	}
	for _, s := range services {
		for _, f := range s.FAQ {
			check("faq id", f.ID, faqIDs)
		}
	}

	return errors.Join(errs...)
}
