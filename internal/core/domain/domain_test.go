package domain

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ids(props []Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestPriceRangeBoundaries(t *testing.T) {
	under, ok := PriceRangeByLabel("Under $200K")
	require.True(t, ok)
	require.True(t, under.Contains(199999))
	require.False(t, under.Contains(200000))

	mid, _ := PriceRangeByLabel("$400K-$700K")
	require.True(t, mid.Contains(400000))
	require.True(t, mid.Contains(699999))
	require.False(t, mid.Contains(700000))
	require.False(t, mid.Contains(399999))

	top, _ := PriceRangeByLabel("$700K+")
	require.True(t, top.Contains(700000))
	require.True(t, top.Contains(25000000))
	require.False(t, top.Contains(699999))

	_, ok = PriceRangeByLabel("$1M+")
	require.False(t, ok)
}

func TestPropertyFilterIsConjunctive(t *testing.T) {
	props := []Property{
		{ID: "v-cheap", Type: "Villa", PriceValue: 150000, Beds: 3},
		{ID: "v-mid", Type: "Villa", PriceValue: 500000, Beds: 4},
		{ID: "a-cheap", Type: "Apartment", PriceValue: 150000, Beds: 2},
		{ID: "a-mid", Type: "Apartment", PriceValue: 500000, Beds: 2},
	}

	got := PropertyFilterState{Type: "Villa", PriceRange: "$400K-$700K"}.Apply(props)
	require.Equal(t, []string{"v-mid"}, ids(got))
	require.Len(t, props, 4, "source slice must not change")
}

func TestPropertyFilterEndToEndExample(t *testing.T) {
	props := []Property{{ID: "p1", Type: "Villa", PriceValue: 450000, Beds: 4}}

	include := PropertyFilterState{Type: "Villa", PriceRange: "$400K-$700K", MinBeds: 3}
	require.Equal(t, []string{"p1"}, ids(include.Apply(props)))

	exclude := PropertyFilterState{MinBeds: 5}
	require.Empty(t, exclude.Apply(props))
}

func TestPropertyFilterTextSearch(t *testing.T) {
	props := []Property{
		{ID: "a", Title: "Sunny Loft", Location: "Austin, TX", Features: []string{"Rooftop Pool"}},
		{ID: "b", Title: "Garden House", Location: "Denver, CO", Description: "Quiet street"},
	}
	require.Equal(t, []string{"a"}, ids(PropertyFilterState{Query: "rooftop"}.Apply(props)))
	require.Equal(t, []string{"b"}, ids(PropertyFilterState{Query: "DENVER"}.Apply(props)))
	require.Empty(t, PropertyFilterState{Query: "miami"}.Apply(props))
}

func TestParsePropertyFilterState(t *testing.T) {
	state := ParsePropertyFilterState(url.Values{
		"type": {"Villa"}, "price": {"$700K+"}, "beds": {"3"}, "q": {"  pool "},
	})
	require.Equal(t, PropertyFilterState{Type: "Villa", PriceRange: "$700K+", MinBeds: 3, Query: "pool"}, state)
	require.True(t, ParsePropertyFilterState(url.Values{"beds": {"x"}}).IsEmpty())
}

func TestTestimonialSortIsStable(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	items := []Testimonial{
		{ID: "t1", Rating: 5, Date: day(3), Category: "buying"},
		{ID: "t2", Rating: 4, Date: day(1), Category: "selling"},
		{ID: "t3", Rating: 5, Date: day(1), Category: "buying"},
		{ID: "t4", Rating: 4, Date: day(2), Category: "buying"},
	}
	tids := func(ts []Testimonial) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	require.Equal(t, []string{"t1", "t3", "t2", "t4"}, tids(TestimonialFilterState{Sort: SortRatingDesc}.Apply(items)))
	require.Equal(t, []string{"t2", "t4", "t1", "t3"}, tids(TestimonialFilterState{Sort: SortRatingAsc}.Apply(items)))
	require.Equal(t, []string{"t2", "t3", "t4", "t1"}, tids(TestimonialFilterState{Sort: SortDateAsc}.Apply(items)))
	require.Equal(t, []string{"t1", "t4", "t2", "t3"}, tids(TestimonialFilterState{Sort: SortDateDesc}.Apply(items)))
	require.Equal(t, []string{"t1", "t3"}, tids(TestimonialFilterState{Category: "buying", MinRating: 5, Sort: SortDateDesc}.Apply(items)))
}

func TestParseTestimonialFilterStateDefaults(t *testing.T) {
	state := ParseTestimonialFilterState(url.Values{"sort": {"random"}, "category": {"all"}, "rating": {"9"}})
	require.Equal(t, TestimonialFilterState{Sort: SortDateDesc}, state)
}

func TestPropertyPatchKeepsUnspecifiedFields(t *testing.T) {
	orig := Property{ID: "p1", Title: "Old", Beds: 3, Images: []string{"a.jpg"}}
	title := "New"
	images := []string{"b.jpg", "c.jpg"}

	got := PropertyPatch{Title: &title, Images: &images}.Apply(orig)
	require.Equal(t, "New", got.Title)
	require.Equal(t, 3, got.Beds)
	require.Equal(t, []string{"b.jpg", "c.jpg"}, got.Images)
	require.Equal(t, "Old", orig.Title)
}

func TestValidateInquiry(t *testing.T) {
	err := ValidateInquiry(Inquiry{Name: "Ann", Email: "ann@example.com", Message: ""})
	require.True(t, errors.Is(err, ErrValidation))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Please enter a message.", verr.Fields["message"])
	require.NotContains(t, verr.Fields, "name")

	err = ValidateInquiry(Inquiry{Name: "Ann", Email: "not-an-email", Phone: "abc", Message: "Hi"})
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Please enter a valid email address.", verr.Fields["email"])
	require.Equal(t, "Please enter a valid phone number.", verr.Fields["phone"])

	require.NoError(t, ValidateInquiry(Inquiry{Name: "Ann", Email: "ann@example.com", Phone: "+1 (512) 555-0100", Message: "Hi"}))
}

func TestDepartmentFilter(t *testing.T) {
	jobs := []JobListing{{ID: "1", Department: "Sales"}, {ID: "2", Department: "Marketing"}}
	require.Len(t, DepartmentFilter("all").Apply(jobs), 2)
	require.Len(t, DepartmentFilter("").Apply(jobs), 2)
	got := DepartmentFilter("sales").Apply(jobs)
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "$450,000", FormatPrice(450000))
	require.Equal(t, "$1,250,000", FormatPrice(1250000))
	require.Equal(t, "$0", FormatPrice(0))
	require.Equal(t, "2,400", FormatNumber(2400))
}
