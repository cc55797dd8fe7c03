package Calculations

import (
	"math"
	"time"

	"Frota/Models"
)

// WarningWindowDays is how many days before expiration a certificate starts
// reporting "Próximo do Vencimento".
const WarningWindowDays = 30

// ClassifyCertificate maps an expiration date to a certificate status given
// the evaluation date. The evaluation date is always passed in explicitly so
// the classification is reproducible.
//
// A certificate expiring on the evaluation day itself still counts as
// Warning, not Expired.
func ClassifyCertificate(expiration, evaluation time.Time) string {
	diffDays := int(math.Ceil(expiration.Sub(evaluation).Hours() / 24))
	switch {
	case diffDays < 0:
		return Models.CertificateExpired
	case diffDays < WarningWindowDays:
		return Models.CertificateWarning
	default:
		return Models.CertificateRegular
	}
}

// ClassifyExpirationDate classifies a dd/mm/yyyy expiration date string.
func ClassifyExpirationDate(dateBR string, evaluation time.Time) (string, error) {
	expiration, err := ParseDateBR(dateBR)
	if err != nil {
		return "", err
	}
	return ClassifyCertificate(expiration, evaluation), nil
}

// RefreshCertificates rewrites both credential statuses of an operator from
// its expiration dates. Handlers call it on every create and update so the
// stored statuses can never drift from the stored dates. The two credentials
// are classified independently.
func RefreshCertificates(operator *Models.Operator, evaluation time.Time) {
	if status, err := ClassifyExpirationDate(operator.ASOExpirationDate, evaluation); err == nil {
		operator.ASOStatus = status
	}
	if status, err := ClassifyExpirationDate(operator.NRExpirationDate, evaluation); err == nil {
		operator.NRStatus = status
	}
}
