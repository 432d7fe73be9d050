package domain

import "time"

// Service: услуга агентства
type Service struct {
	ID       string
	Slug     string
	Title    string
	Category string
	Summary  string
	// Body: HTML из CMS, перед выводом проходит санитайзер
	Body            string
	Icon            string
	Highlights      []string
	RelatedServices []string
	FAQ             []FAQ
}

// TeamMember: сотрудник агентства
type TeamMember struct {
	ID         string
	Name       string
	Role       string
	Department string
	Bio        string
	Photo      string
	Email      string
	Phone      string
	Languages  []string
	SameAs     []string
}

// Testimonial: отзыв клиента
type Testimonial struct {
	ID         string
	Author     string
	Location   string
	Category   string
	Rating     int
	Quote      string
	Date       time.Time
	PropertyID string
	VideoURL   string
}

// SalaryRange: вилка зарплаты вакансии; у части вакансий отсутствует
type SalaryRange struct {
	Min      int64
	Max      int64
	Currency string
	// Unit: YEAR, MONTH, HOUR
	Unit string
}

// JobListing: вакансия
type JobListing struct {
	ID               string
	Slug             string
	Title            string
	Department       string
	Location         string
	EmploymentType   string
	Summary          string
	Responsibilities []string
	Requirements     []string
	Benefits         []string
	Salary           *SalaryRange
	PostedAt         time.Time
	// Deadline: нулевое значение означает "без срока"
	Deadline time.Time
	Remote   bool
}

// FAQ: вопрос-ответ
type FAQ struct {
	ID       string
	Category string
	Question string
	Answer   string
}

// CompanyStat: цифра для блока "о компании"
type CompanyStat struct {
	Label string
	Value string
}

// OpeningHours: часы работы в формате schema.org ("Mo-Fr 09:00-18:00")
type OpeningHours struct {
	Days   string
	Opens  string
	Closes string
}

// Company: факты о компании
type Company struct {
	Name        string
	LegalName   string
	Tagline     string
	Description string
	URL         string
	Logo        string
	Phone       string
	Email       string
	Street      string
	City        string
	Region      string
	PostalCode  string
	Country     string
	Latitude    float64
	Longitude   float64
	FoundedYear int
	PriceRange  string
	Hours       []OpeningHours
	SameAs      []string
	Stats       []CompanyStat
	Values      []string
	History     string
}
