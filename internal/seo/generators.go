package seo

import (
	"math"
	"strconv"
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

func residenceType(propertyType string) string {
	switch strings.ToLower(propertyType) {
	case "house", "villa", "townhouse":
		return "House"
	case "apartment", "condo":
		return "Apartment"
	default:
		return "Residence"
	}
}

func postalAddress(street, locality, region, postalCode, country string) map[string]any {
	addr := map[string]any{"@type": "PostalAddress"}
	set(addr, "streetAddress", street)
	set(addr, "addressLocality", locality)
	set(addr, "addressRegion", region)
	set(addr, "postalCode", postalCode)
	set(addr, "addressCountry", country)
	if len(addr) == 1 {
		return nil
	}
	return addr
}

func geoCoordinates(lat, lng float64) map[string]any {
	return map[string]any{"@type": "GeoCoordinates", "latitude": lat, "longitude": lng}
}

// PropertyPath: путь объекта на сайте
func PropertyPath(id string) string {
	return "/properties/" + id
}

// PropertySchema строит RealEstateListing, у которого "about" это само жилье
func PropertySchema(p domain.Property, baseURL string) Schema {
	s := newSchema("RealEstateListing")
	url := AbsoluteURL(baseURL, PropertyPath(p.ID))
	set(s, "@id", url)
	set(s, "url", url)
	set(s, "name", p.Title)
	set(s, "description", p.Description)
	set(s, "image", absoluteURLs(baseURL, p.Images))
	set(s, "datePosted", date(p.CreatedAt))

	residence := map[string]any{"@type": residenceType(p.Type)}
	set(residence, "name", p.Title)
	set(residence, "numberOfRooms", p.Beds)
	set(residence, "numberOfBedrooms", p.Beds)
	set(residence, "numberOfBathroomsTotal", p.Baths)
	set(residence, "yearBuilt", p.YearBuilt)
	if p.Sqft > 0 {
		residence["floorSize"] = map[string]any{"@type": "QuantitativeValue", "value": p.Sqft, "unitCode": "FTK"}
	}
	set(residence, "amenityFeature", amenityFeatures(p.Features))
	if addr := postalAddress(p.Address, p.Location, "", "", ""); addr != nil {
		residence["address"] = addr
	}
	if p.HasLocation() {
		residence["geo"] = geoCoordinates(*p.Latitude, *p.Longitude)
	}
	s["about"] = residence

	if p.PriceValue > 0 {
		s["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         p.PriceValue,
			"priceCurrency": "USD",
			"url":           url,
		}
	}
	return s
}

func amenityFeatures(features []string) []map[string]any {
	out := make([]map[string]any, 0, len(features))
	for _, f := range features {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, map[string]any{"@type": "LocationFeatureSpecification", "name": f, "value": true})
	}
	return out
}

// PropertyListSchema строит ItemList из URL объектов в порядке вывода
func PropertyListSchema(props []domain.Property, baseURL, name string) Schema {
	s := newSchema("ItemList")
	set(s, "name", name)
	s["numberOfItems"] = len(props)
	items := make([]map[string]any, 0, len(props))
	for i, p := range props {
		item := map[string]any{"@type": "ListItem", "position": i + 1}
		set(item, "url", AbsoluteURL(baseURL, PropertyPath(p.ID)))
		set(item, "name", p.Title)
		items = append(items, item)
	}
	s["itemListElement"] = items
	return s
}

// BreadcrumbItem: имя шага и путь на сайте; у последнего пути может не быть
type BreadcrumbItem struct {
	Name string
	Path string
}

func BreadcrumbSchema(items []BreadcrumbItem, baseURL string) Schema {
	s := newSchema("BreadcrumbList")
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{"@type": "ListItem", "position": i + 1, "name": it.Name}
		set(entry, "item", AbsoluteURL(baseURL, it.Path))
		el = append(el, entry)
	}
	s["itemListElement"] = el
	return s
}

func openingHours(c domain.Company) []string {
	out := make([]string, 0, len(c.Hours))
	for _, h := range c.Hours {
		out = append(out, h.Days+" "+h.Opens+"-"+h.Closes)
	}
	return out
}

// RealEstateAgentSchema описывает агентство как LocalBusiness. aggregateRating
// есть только при наличии отзывов.
func RealEstateAgentSchema(c domain.Company, reviews []domain.Testimonial) Schema {
	s := newSchema("RealEstateAgent")
	set(s, "@id", AbsoluteURL(c.URL, "/#agency"))
	set(s, "name", c.Name)
	set(s, "legalName", c.LegalName)
	set(s, "description", c.Description)
	set(s, "url", c.URL)
	set(s, "logo", AbsoluteURL(c.URL, c.Logo))
	set(s, "image", AbsoluteURL(c.URL, c.Logo))
	set(s, "telephone", c.Phone)
	set(s, "email", c.Email)
	set(s, "priceRange", c.PriceRange)
	if addr := postalAddress(c.Street, c.City, c.Region, c.PostalCode, c.Country); addr != nil {
		s["address"] = addr
	}
	if c.Latitude != 0 || c.Longitude != 0 {
		s["geo"] = geoCoordinates(c.Latitude, c.Longitude)
	}
	set(s, "openingHours", openingHours(c))
	set(s, "sameAs", c.SameAs)
	if rating := AggregateRatingSchema(reviews); rating != nil {
		delete(rating, "@context")
		s["aggregateRating"] = rating
	}
	return s
}

func OrganizationSchema(c domain.Company) Schema {
	s := newSchema("Organization")
	set(s, "name", c.Name)
	set(s, "legalName", c.LegalName)
	set(s, "url", c.URL)
	set(s, "logo", AbsoluteURL(c.URL, c.Logo))
	set(s, "foundingDate", foundingDate(c.FoundedYear))
	set(s, "sameAs", c.SameAs)
	if c.Phone != "" || c.Email != "" {
		cp := map[string]any{"@type": "ContactPoint", "contactType": "customer service"}
		set(cp, "telephone", c.Phone)
		set(cp, "email", c.Email)
		s["contactPoint"] = cp
	}
	return s
}

func foundingDate(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// WebSiteSchema содержит SearchAction на поиск по объектам
func WebSiteSchema(name, baseURL string) Schema {
	s := newSchema("WebSite")
	set(s, "name", name)
	set(s, "url", baseURL)
	if baseURL != "" {
		s["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      AbsoluteURL(baseURL, "/properties?q={search_term_string}"),
			"query-input": "required name=search_term_string",
		}
	}
	return s
}

// FAQPageSchema без вопросов возвращает nil
func FAQPageSchema(faqs []domain.FAQ) Schema {
	if len(faqs) == 0 {
		return nil
	}
	s := newSchema("FAQPage")
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	s["mainEntity"] = entities
	return s
}

func PersonSchema(m domain.TeamMember, c domain.Company) Schema {
	s := newSchema("Person")
	set(s, "name", m.Name)
	set(s, "jobTitle", m.Role)
	set(s, "description", m.Bio)
	set(s, "image", AbsoluteURL(c.URL, m.Photo))
	set(s, "email", m.Email)
	set(s, "telephone", m.Phone)
	set(s, "knowsLanguage", m.Languages)
	set(s, "sameAs", m.SameAs)
	if c.Name != "" {
		works := map[string]any{"@type": "RealEstateAgent", "name": c.Name}
		set(works, "url", c.URL)
		s["worksFor"] = works
	}
	return s
}

// JobPath: путь вакансии на сайте
func JobPath(slug string) string {
	return "/careers/" + slug
}

// JobPostingSchema пропускает baseSalary и validThrough, если у вакансии их нет
func JobPostingSchema(j domain.JobListing, c domain.Company) Schema {
	s := newSchema("JobPosting")
	set(s, "title", j.Title)
	set(s, "description", jobDescription(j))
	set(s, "identifier", j.ID)
	set(s, "url", AbsoluteURL(c.URL, JobPath(j.Slug)))
	set(s, "datePosted", date(j.PostedAt))
	set(s, "validThrough", date(j.Deadline))
	set(s, "employmentType", j.EmploymentType)

	org := map[string]any{"@type": "Organization"}
	set(org, "name", c.Name)
	set(org, "sameAs", c.URL)
	set(org, "logo", AbsoluteURL(c.URL, c.Logo))
	s["hiringOrganization"] = org

	place := map[string]any{"@type": "Place"}
	locality, region := splitLocation(j.Location)
	if addr := postalAddress("", locality, region, "", c.Country); addr != nil {
		place["address"] = addr
	}
	s["jobLocation"] = place
	if j.Remote {
		s["jobLocationType"] = "TELECOMMUTE"
	}

	// baseSalary только при заданной вилке
	if j.Salary != nil && (j.Salary.Min > 0 || j.Salary.Max > 0) {
		value := map[string]any{"@type": "QuantitativeValue"}
		set(value, "minValue", j.Salary.Min)
		set(value, "maxValue", j.Salary.Max)
		set(value, "unitText", j.Salary.Unit)
		salary := map[string]any{"@type": "MonetaryAmount", "value": value}
		set(salary, "currency", j.Salary.Currency)
		s["baseSalary"] = salary
	}
	return s
}

func jobDescription(j domain.JobListing) string {
	parts := []string{j.Summary}
	if len(j.Responsibilities) > 0 {
		parts = append(parts, "Responsibilities: "+strings.Join(j.Responsibilities, "; ")+".")
	}
	if len(j.Requirements) > 0 {
		parts = append(parts, "Requirements: "+strings.Join(j.Requirements, "; ")+".")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// splitLocation: "Austin, TX" -> ("Austin", "TX")
func splitLocation(loc string) (string, string) {
	city, region, found := strings.Cut(loc, ",")
	if !found {
		return strings.TrimSpace(loc), ""
	}
	return strings.TrimSpace(city), strings.TrimSpace(region)
}

func ReviewSchema(t domain.Testimonial, c domain.Company) Schema {
	s := newSchema("Review")
	item := map[string]any{"@type": "RealEstateAgent"}
	set(item, "name", c.Name)
	set(item, "url", c.URL)
	s["itemReviewed"] = item
	author := map[string]any{"@type": "Person"}
	set(author, "name", t.Author)
	s["author"] = author
	s["reviewRating"] = map[string]any{
		"@type":       "Rating",
		"ratingValue": t.Rating,
		"bestRating":  5,
		"worstRating": 1,
	}
	set(s, "reviewBody", t.Quote)
	set(s, "datePublished", date(t.Date))
	return s
}

// AggregateRatingSchema без отзывов возвращает nil
func AggregateRatingSchema(reviews []domain.Testimonial) Schema {
	avg, count := domain.AverageRating(reviews)
	if count == 0 {
		return nil
	}
	s := newSchema("AggregateRating")
	s["ratingValue"] = math.Round(avg*10) / 10
	s["reviewCount"] = count
	s["bestRating"] = 5
	s["worstRating"] = 1
	return s
}

// ServicePath: путь услуги на сайте
func ServicePath(slug string) string {
	return "/services/" + slug
}

func ServiceSchema(svc domain.Service, c domain.Company) Schema {
	s := newSchema("Service")
	set(s, "name", svc.Title)
	set(s, "description", svc.Summary)
	set(s, "serviceType", svc.Category)
	set(s, "url", AbsoluteURL(c.URL, ServicePath(svc.Slug)))
	provider := map[string]any{"@type": "RealEstateAgent"}
	set(provider, "name", c.Name)
	set(provider, "url", c.URL)
	s["provider"] = provider
	if c.City != "" {
		s["areaServed"] = map[string]any{"@type": "City", "name": c.City}
	}
	return s
}

// TeamSchema: команда как Person внутри ItemList
func TeamSchema(members []domain.TeamMember, c domain.Company) Schema {
	if len(members) == 0 {
		return nil
	}
	s := newSchema("ItemList")
	set(s, "name", c.Name+" team")
	items := make([]map[string]any, 0, len(members))
	for i, m := range members {
		person := PersonSchema(m, c)
		delete(person, "@context")
		items = append(items, map[string]any{"@type": "ListItem", "position": i + 1, "item": person})
	}
	s["itemListElement"] = items
	return s
}
