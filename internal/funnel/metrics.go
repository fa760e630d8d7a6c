package funnel

import (
	"math"
	"strconv"
)

// SourceStats are the funnel counters for one lead source.
type SourceStats struct {
	Leads        int `json:"leads"`
	Appointments int `json:"appointments"`
	Shows        int `json:"shows"`
	Sales        int `json:"sales"`
}

// Metrics are the aggregate funnel numbers for the dashboard. The rates are
// percentages formatted as numeric strings with one decimal place; a zero
// denominator yields "0".
type Metrics struct {
	Internet SourceStats `json:"internet"`
	Phone    SourceStats `json:"phone"`
	WalkIn   WalkIn      `json:"walkIn"`

	TotalAppointments  int `json:"totalAppointments"`
	TotalShows         int `json:"totalShows"`
	TotalSales         int `json:"totalSales"`
	TotalOpportunities int `json:"totalOpportunities"`

	ShowRate   string `json:"showRate"`
	CloseRate  string `json:"closeRate"`
	Conversion string `json:"conversion"`
}

// TeamMemberCounters are pre-aggregated per-person funnel counters reported by
// the team dashboard. They stand in for a raw lead list.
type TeamMemberCounters struct {
	InternetLeads        int `json:"internetLeads"`
	InternetAppointments int `json:"internetAppointments"`
	InternetShows        int `json:"internetShows"`
	InternetSales        int `json:"internetSales"`
	PhoneLeads           int `json:"phoneLeads"`
	PhoneAppointments    int `json:"phoneAppointments"`
	PhoneShows           int `json:"phoneShows"`
	PhoneSales           int `json:"phoneSales"`
	WalkInVisits         int `json:"walkInVisits"`
	WalkInSales          int `json:"walkInSales"`
}

// ComputeMetrics derives dashboard metrics from the lead list and the walk-in
// counters. Walk-in-sourced rows in the lead list are excluded from the
// internet and phone partitions and are not separately aggregated; walk-in
// traffic is represented solely by the counters.
func ComputeMetrics(leads []Lead, walkIn WalkIn) Metrics {
	var internet, phone SourceStats
	for _, lead := range leads {
		var stats *SourceStats
		switch lead.Source {
		case SourceInternet:
			stats = &internet
		case SourcePhone:
			stats = &phone
		default:
			continue
		}
		stats.Leads++
		switch lead.Status {
		case StatusApptSet:
			stats.Appointments++
		case StatusShowed:
			stats.Appointments++
			stats.Shows++
		case StatusSold:
			stats.Appointments++
			stats.Shows++
			stats.Sales++
		}
	}
	return assemble(internet, phone, walkIn)
}

// ComputeTeamMemberMetrics applies the dashboard formulas to pre-aggregated
// per-person counters.
func ComputeTeamMemberMetrics(c TeamMemberCounters) Metrics {
	internet := SourceStats{
		Leads:        c.InternetLeads,
		Appointments: c.InternetAppointments,
		Shows:        c.InternetShows,
		Sales:        c.InternetSales,
	}
	phone := SourceStats{
		Leads:        c.PhoneLeads,
		Appointments: c.PhoneAppointments,
		Shows:        c.PhoneShows,
		Sales:        c.PhoneSales,
	}
	return assemble(internet, phone, WalkIn{Visits: c.WalkInVisits, Sales: c.WalkInSales})
}

func assemble(internet, phone SourceStats, walkIn WalkIn) Metrics {
	totalAppointments := internet.Appointments + phone.Appointments
	totalShows := internet.Shows + phone.Shows
	totalSales := internet.Sales + phone.Sales + walkIn.Sales
	totalOpportunities := internet.Leads + phone.Leads + walkIn.Visits
	showableOpportunities := totalShows + walkIn.Visits

	return Metrics{
		Internet:           internet,
		Phone:              phone,
		WalkIn:             walkIn,
		TotalAppointments:  totalAppointments,
		TotalShows:         totalShows,
		TotalSales:         totalSales,
		TotalOpportunities: totalOpportunities,
		ShowRate:           rate(totalShows, totalAppointments),
		CloseRate:          rate(totalSales, showableOpportunities),
		Conversion:         rate(totalSales, totalOpportunities),
	}
}

// rate formats 100*numerator/denominator with one decimal place. A zero
// denominator yields "0" so that an empty dashboard never shows NaN.
func rate(numerator, denominator int) string {
	if denominator <= 0 {
		return "0"
	}
	value := math.Round(1000*float64(numerator)/float64(denominator)) / 10
	return strconv.FormatFloat(value, 'f', 1, 64)
}
