package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

var jobs = []domain.JobListing{
	{
		ID:             "job-1",
		Slug:           "real-estate-agent",
		Title:          "Real Estate Agent",
		Department:     "Sales",
		Location:       "Austin, TX",
		EmploymentType: "FULL_TIME",
		Summary:        "Represent buyers and sellers across Central Texas with the support of our marketing and transaction teams.",
		Responsibilities: []string{
			"Guide clients through showings, offers and closings",
			"Build and maintain a referral network",
			"Prepare comparative market analyses",
		},
		Requirements: []string{
			"Active Texas real estate license",
			"Strong negotiation and communication skills",
		},
		Benefits: []string{"Competitive commission split", "Paid marketing budget", "Health insurance"},
		Salary:   &domain.SalaryRange{Min: 60000, Max: 150000, Currency: "USD", Unit: "YEAR"},
		PostedAt: day(2024, time.April, 1),
		Deadline: day(2024, time.June, 30),
	},
	{
		ID:             "job-2",
		Slug:           "marketing-coordinator",
		Title:          "Marketing Coordinator",
		Department:     "Marketing",
		Location:       "Austin, TX",
		EmploymentType: "FULL_TIME",
		Summary:        "Coordinate listing launches, photography schedules and social campaigns.",
		Responsibilities: []string{
			"Schedule photographers and videographers",
			"Publish listings to portals and social channels",
		},
		Requirements: []string{"Two years of marketing experience", "Comfort with design tools"},
		Benefits:     []string{"Hybrid schedule", "Health insurance"},
		PostedAt:     day(2024, time.April, 15),
		Remote:       true,
	},
	{
		ID:             "job-3",
		Slug:           "property-manager",
		Title:          "Property Manager",
		Department:     "Property Management",
		Location:       "Round Rock, TX",
		EmploymentType: "FULL_TIME",
		Summary:        "Own a portfolio of residential rentals from tenant screening to move-out.",
		Responsibilities: []string{
			"Screen tenants and prepare leases",
			"Coordinate maintenance with vetted contractors",
		},
		Requirements: []string{"Property management experience", "Texas license preferred"},
		Benefits:     []string{"Company vehicle allowance", "Health insurance"},
		Salary:       &domain.SalaryRange{Min: 55000, Max: 70000, Currency: "USD", Unit: "YEAR"},
		PostedAt:     day(2024, time.March, 20),
	},
	{
		ID:               "job-4",
		Slug:             "transaction-coordinator-intern",
		Title:            "Transaction Coordinator Intern",
		Department:       "Operations",
		Location:         "Austin, TX",
		EmploymentType:   "INTERN",
		Summary:          "Learn the closing process end to end while supporting our transaction team.",
		Responsibilities: []string{"Track contract deadlines", "Prepare closing checklists"},
		Requirements:     []string{"Currently enrolled in a degree program"},
		Salary:           &domain.SalaryRange{Min: 18, Max: 22, Currency: "USD", Unit: "HOUR"},
		PostedAt:         day(2024, time.May, 2),
		Deadline:         day(2024, time.July, 15),
	},
}

// Jobs возвращает все открытые вакансии; срез является копией
func Jobs() []domain.JobListing {
	return cloneAll(jobs, cloneJob)
}

func GetJobBySlug(slug string) (domain.JobListing, bool) {
	for _, j := range jobs {
		if j.Slug == slug {
			return cloneJob(j), true
		}
	}
	return domain.JobListing{}, false
}

func GetJobByID(id string) (domain.JobListing, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return cloneJob(j), true
		}
	}
	return domain.JobListing{}, false
}

func GetJobsByDepartment(department string) []domain.JobListing {
	out := make([]domain.JobListing, 0)
	for _, j := range jobs {
		if strings.EqualFold(j.Department, department) {
			out = append(out, cloneJob(j))
		}
	}
	return out
}

// Departments: отделы вакансий в порядке первого появления
func Departments() []string {
	var out []string
	for _, j := range jobs {
		if !slices.Contains(out, j.Department) {
			out = append(out, j.Department)
		}
	}
	return out
}
