// Package domain defines the core business entities for the boleto
// gateway. These models are independent of external services and are
// the canonical data structures used throughout the service.
package domain

// BankID identifies one of the supported Brazilian banks.
// The zero value is the "no bank selected" sentinel.
type BankID string

// Supported banks. The set is closed: each id maps to exactly one
// ordered sequence of configuration fields in the bank registry.
const (
	BankNone       BankID = ""
	BankBB         BankID = "bb"
	BankBradesco   BankID = "bradesco"
	BankCEF        BankID = "cef"
	BankCEFSigcb   BankID = "cef_sigcb"
	BankCEFSinco   BankID = "cef_sinco"
	BankHSBC       BankID = "hsbc"
	BankItau       BankID = "itau"
	BankNossaCaixa BankID = "nossacaixa"
	BankReal       BankID = "real"
	BankSantander  BankID = "santander"
	BankUnibanco   BankID = "unibanco"
)

// BankFieldSpec describes one merchant-configurable field required by
// a given bank. Keys are the stable identifiers consumed by the slip
// templates, kept in Portuguese because they are the contract.
type BankFieldSpec struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
}

// BankInfo is the public catalogue item for GET /v1/banks.
type BankInfo struct {
	ID   BankID `json:"id"`
	Name string `json:"name"`
}
