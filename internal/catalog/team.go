package catalog

import (
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

var teamMembers = []domain.TeamMember{
	{
		ID:         "team-1",
		Name:       "Maria Alvarez",
		Role:       "Founder & Managing Broker",
		Department: "Leadership",
		Bio:        "Maria founded Realhouse after fifteen years of brokerage in Central Texas and still leads the largest negotiations herself.",
		Photo:      "/images/team/maria-alvarez.jpg",
		Email:      "maria@realhouse.example",
		Phone:      "+1 512 555 0101",
		Languages:  []string{"English", "Spanish"},
		SameAs:     []string{"https://www.linkedin.com/in/maria-alvarez-realhouse"},
	},
	{
		ID:         "team-2",
		Name:       "David Chen",
		Role:       "Senior Buyer Agent",
		Department: "Sales",
		Bio:        "David specializes in first-time buyers and relocation clients moving to Austin for tech jobs.",
		Photo:      "/images/team/david-chen.jpg",
		Email:      "david@realhouse.example",
		Phone:      "+1 512 555 0102",
		Languages:  []string{"English", "Mandarin"},
	},
	{
		ID:         "team-3",
		Name:       "Aisha Roberts",
		Role:       "Listing Specialist",
		Department: "Sales",
		Bio:        "Aisha runs pricing and launch plans for our sellers, from staging to the final walkthrough.",
		Photo:      "/images/team/aisha-roberts.jpg",
		Email:      "aisha@realhouse.example",
		Languages:  []string{"English"},
	},
	{
		ID:         "team-4",
		Name:       "Tom Becker",
		Role:       "Property Manager",
		Department: "Property Management",
		Bio:        "Tom keeps a portfolio of more than two hundred rentals occupied, maintained and compliant.",
		Photo:      "/images/team/tom-becker.jpg",
		Email:      "tom@realhouse.example",
		Languages:  []string{"English", "German"},
	},
	{
		ID:         "team-5",
		Name:       "Priya Nair",
		Role:       "Marketing Lead",
		Department: "Marketing",
		Bio:        "Priya plans the photography, video tours and ad campaigns behind every Realhouse listing.",
		Photo:      "/images/team/priya-nair.jpg",
		Email:      "priya@realhouse.example",
		Languages:  []string{"English", "Hindi"},
	},
	{
		ID:         "team-6",
		Name:       "Luis Ortega",
		Role:       "Transaction Coordinator",
		Department: "Operations",
		Bio:        "Luis tracks every deadline between contract and closing so nothing slips.",
		Photo:      "/images/team/luis-ortega.jpg",
		Languages:  []string{"English", "Spanish"},
	},
}

// TeamMembers возвращает команду; срез является копией
func TeamMembers() []domain.TeamMember {
	return cloneAll(teamMembers, cloneTeamMember)
}

func GetTeamMemberByID(id string) (domain.TeamMember, bool) {
	for _, m := range teamMembers {
		if m.ID == id {
			return cloneTeamMember(m), true
		}
	}
	return domain.TeamMember{}, false
}

func GetTeamMembersByDepartment(department string) []domain.TeamMember {
	out := make([]domain.TeamMember, 0)
	for _, m := range teamMembers {
		if strings.EqualFold(m.Department, department) {
			out = append(out, cloneTeamMember(m))
		}
	}
	return out
}
