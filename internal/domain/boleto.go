package domain

import "time"

// OrderSnapshot holds the minimal order facts needed to derive boleto
// data. It is constructed once, at the moment payment is processed,
// and is immutable afterwards.
type OrderSnapshot struct {
	ID        int64     `json:"id"`
	Total     float64   `json:"total"`
	FirstName string    `json:"billing_first_name"`
	LastName  string    `json:"billing_last_name"`
	Address1  string    `json:"billing_address_1"`
	Address2  string    `json:"billing_address_2,omitempty"`
	City      string    `json:"billing_city"`
	State     string    `json:"billing_state"`
	Postcode  string    `json:"billing_postcode"`
	PlacedAt  time.Time `json:"created_at"`
}

// BoletoData is the derived record persisted against an order.
// JSON keys match the field names the slip templates consume, so this
// struct is the stable contract between derivation and rendering.
type BoletoData struct {
	OurNumber      string `json:"nosso_numero"`
	DocumentNumber string `json:"numero_documento"`
	DueDate        string `json:"data_vencimento"`
	DocumentDate   string `json:"data_documento"`
	ProcessingDate string `json:"data_processamento"`
	Amount         string `json:"valor_boleto"`
	PayerName      string `json:"sacado"`
	AddressLine1   string `json:"endereco1"`
	AddressLine2   string `json:"endereco2"`
}

// GenerateResponse is returned by POST /v1/orders/{id}/boleto.
// Validity repeats the due date so notification consumers can
// template "Validity of the Boleto: ..." without parsing the record.
type GenerateResponse struct {
	OrderID  int64       `json:"order_id"`
	Boleto   *BoletoData `json:"boleto"`
	Validity string      `json:"validity"`
}

// SlipPayload is everything a slip template needs to print a boleto:
// the derived data, the selected bank and its configured fields, the
// shop identity, and the computed display lines.
type SlipPayload struct {
	BoletoData

	Bank       BankID            `json:"bank"`
	BankFields map[string]string `json:"bank_fields,omitempty"`

	ShopName      string `json:"shop_name"`
	CorporateName string `json:"cedente"`
	CPFCNPJ       string `json:"cpf_cnpj"`
	ShopAddress   string `json:"endereco"`
	ShopCityState string `json:"cidade_uf"`
	Logo          string `json:"boleto_logo,omitempty"`

	Demonstrativo1 string `json:"demonstrativo1"`
	Demonstrativo2 string `json:"demonstrativo2"`
	Demonstrativo3 string `json:"demonstrativo3"`
	Instrucoes1    string `json:"instrucoes1"`
	Instrucoes2    string `json:"instrucoes2"`
	Instrucoes3    string `json:"instrucoes3"`
	Instrucoes4    string `json:"instrucoes4"`
	Identificacao  string `json:"identificacao"`
}
