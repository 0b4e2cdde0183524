package domain

// AdminDashboard is the admin summary.
type AdminDashboard struct {
	TotalUsers       int
	ActiveTolerances int
	PendingRequests  int
	CompletedMatches int
}

// CarrierDashboard is the carrier summary.
type CarrierDashboard struct {
	MyTolerances int
	MyRequests   int
	MyMatches    int
}

// DriverDashboard is the driver summary.
type DriverDashboard struct {
	AssignedMatches  int
	CompletedMatches int
	CurrentStatus    MatchStatus
}

// Dashboard holds exactly one of the per-role summaries.
type Dashboard struct {
	Role    Role
	Admin   *AdminDashboard
	Carrier *CarrierDashboard
	Driver  *DriverDashboard
}

// Overview is the headline block of admin statistics.
type Overview struct {
	TotalUsers       int
	TotalCarriers    int
	TotalDrivers     int
	ActiveTolerances int
	PendingRequests  int
	TotalMatches     int
	CompletedMatches int
}

// Monthly counts entities created since the start of the current month.
type Monthly struct {
	Tolerances int
	Requests   int
	Matches    int
}

// CarrierRank is a carrier with its match count.
type CarrierRank struct {
	Name    string
	Matches int
}

// Statistics is the admin statistics report.
type Statistics struct {
	Overview        Overview
	Monthly         Monthly
	OfferStatuses   map[string]int
	RequestStatuses map[string]int
	MatchStatuses   map[string]int
	TopCarriers     []CarrierRank
}
