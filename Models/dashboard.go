package Models

// DashboardStats feeds the overview counter cards.
type DashboardStats struct {
	TotalForklifts       int64 `json:"total_forklifts"`
	OperationalForklifts int64 `json:"operational_forklifts"`
	StoppedForklifts     int64 `json:"stopped_forklifts"`
	MaintenanceForklifts int64 `json:"maintenance_forklifts"`

	TotalOperators                   int64 `json:"total_operators"`
	OperatorsWithValidCertificates   int64 `json:"operators_with_valid_certificates"`
	OperatorsWithWarningCertificates int64 `json:"operators_with_warning_certificates"`
	OperatorsWithExpiredCertificates int64 `json:"operators_with_expired_certificates"`

	ActiveOperations    int64 `json:"active_operations"`
	PendingMaintenances int64 `json:"pending_maintenances"`
}
