// Package bank is the schema registry for the supported Brazilian
// banks: a pure mapping from a bank id to the ordered set of
// configuration fields the merchant must fill in for that bank.
// The tables are fixed data and never mutated at runtime.
package bank

import "github.com/wpbrasil/boleto-gateway-go/internal/domain"

// order is the display order of the catalogue, matching the original
// admin select.
var order = []domain.BankID{
	domain.BankBB,
	domain.BankBradesco,
	domain.BankCEF,
	domain.BankCEFSigcb,
	domain.BankCEFSinco,
	domain.BankHSBC,
	domain.BankItau,
	domain.BankNossaCaixa,
	domain.BankReal,
	domain.BankSantander,
	domain.BankUnibanco,
}

var names = map[domain.BankID]string{
	domain.BankBB:         "Banco do Brasil",
	domain.BankBradesco:   "Bradesco",
	domain.BankCEF:        "Caixa Economica Federal - SR (SICOB)",
	domain.BankCEFSigcb:   "Caixa Economica Federal - SIGCB",
	domain.BankCEFSinco:   "Caixa Economica Federal - SINCO",
	domain.BankHSBC:       "HSBC",
	domain.BankItau:       "Itau",
	domain.BankNossaCaixa: "Nossa Caixa",
	domain.BankReal:       "Real",
	domain.BankSantander:  "Santander",
	domain.BankUnibanco:   "Unibanco",
}

var fields = map[domain.BankID][]domain.BankFieldSpec{
	domain.BankBB: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "convenio", Label: "Número do convênio", Description: "Convênios de 6, 7 ou 8 digitos."},
		{Key: "contrato", Label: "Número do contrato", Description: "Número do contrato."},
		{Key: "carteira", Label: "Wallet code", Description: "Wallet code."},
		{Key: "variacao_carteira", Label: "Variação da Carteira (opcional)", Description: "Variação da Carteira com traço."},
		{Key: "formatacao_convenio", Label: "Formatação do Convênio", Description: "8 para Convênio com 8 dígitos, 7 para Convênio com 7 dígitos, ou 6 para Convênio com 6 dígitos."},
		{Key: "formatacao_nosso_numero", Label: "Formatação do Nosso Número", Description: "Usado apenas para Convênio com 6 dígitos (informe 1 caso o Nosso Número for de até 5 dígitos ou 2 para opção de até 17 dígitos.", Default: "2"},
	},
	domain.BankBradesco: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "agencia_dv", Label: "Agency digit"},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "conta_cedente", Label: "Conta do cedente", Description: "Conta cedente sem digito (apenas números)."},
		{Key: "conta_cedente_dv", Label: "Conta do cedente digito"},
		{Key: "carteira", Label: "Wallet code", Description: "03 or 06."},
	},
	domain.BankCEF: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "conta_cedente", Label: "Conta do cedente", Description: "Conta cedente sem digito. Utilize apenas números."},
		{Key: "conta_cedente_dv", Label: "Conta do cedente digito", Description: "Digito da conta cedente."},
		{Key: "carteira", Label: "Wallet code", Description: "Utilize SR para Sem Registro ou CR para Com Registro. Nota: Confirme esta informação com o seu gerente.", Default: "SR"},
		{Key: "inicio_nosso_numero", Label: "Início do Nosso Número", Description: "Utilize 80, 81 ou 82 para Sem Registro ou 90 para Com Registro. Nota: Confirme esta informação com o seu gerente.", Default: "80"},
	},
	domain.BankCEFSigcb: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "conta_cedente", Label: "Conta do cedente", Description: "Conta cedente com 6 digitos. Utilize apenas números."},
		{Key: "carteira", Label: "Wallet code", Description: "Utilize SR para Sem Registro ou CR para Com Registro. Nota: Confirme esta informação com o seu gerente.", Default: "SR"},
	},
	domain.BankCEFSinco: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "conta_cedente", Label: "Conta do cedente", Description: "Conta cedente sem digito. Utilize apenas números."},
		{Key: "conta_cedente_dv", Label: "Conta do cedente digito", Description: "Digito da conta cedente."},
		{Key: "carteira", Label: "Wallet code", Description: "Utilize SR para Sem Registro ou CR para Com Registro. Nota: Confirme esta informação com o seu gerente.", Default: "SR"},
	},
	domain.BankHSBC: {
		{Key: "codigo_cedente", Label: "Código do cedente", Description: "Código do cedente com apenas 7 digitos."},
		{Key: "carteira", Label: "Wallet code", Description: "Sempre CNR.", Default: "CNR"},
	},
	domain.BankItau: {
		{Key: "agencia", Label: "Agency", Description: "Agency number."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "carteira", Label: "Wallet code", Description: "Insert the code (175, 174, 104, 109, 178, or 157)."},
	},
	domain.BankNossaCaixa: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta_cedente", Label: "Conta Cedente", Description: "Conta do cedente sem digito e com apenas 6 digitos."},
		{Key: "conta_cedente_dv", Label: "Conta Cedente digito"},
		{Key: "carteira", Label: "Wallet code", Description: "Utilize 5 para Cobrança Direta ou 1 para Cobrança Simples."},
		{Key: "modalidade_conta", Label: "Modalidade da conta", Description: "02 posições."},
	},
	domain.BankReal: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "carteira", Label: "Wallet code", Description: "Wallet code."},
	},
	domain.BankSantander: {
		{Key: "codigo_cliente", Label: "Código do Cliente", Description: "Código do Cliente (PSK) com apenas 7 digitos."},
		{Key: "ponto_venda", Label: "Ponto de venda (Agência)", Description: "Agencia number."},
		{Key: "carteira", Label: "Wallet code", Description: "Cobrança Simples - SEM Registro."},
		{Key: "carteira_descricao", Label: "Descrição da Carteira", Description: "Descrição da Carteira.", Default: "COBRANÇA SIMPLES - CSR"},
	},
	domain.BankUnibanco: {
		{Key: "agencia", Label: "Agency", Description: "Agency number without digit."},
		{Key: "conta", Label: "Account", Description: "Account number without digit."},
		{Key: "conta_dv", Label: "Account digit"},
		{Key: "codigo_cliente", Label: "Client code", Description: "Client code."},
		{Key: "carteira", Label: "Wallet code", Description: "Wallet code."},
	},
}

// FieldsFor returns the ordered configuration field set for the given
// bank. Unknown ids (including the unselected sentinel) yield an
// empty set, not an error: an unrecognized bank simply has no extra
// fields. The returned slice is a fresh copy; callers cannot mutate
// the registry through it.
func FieldsFor(id domain.BankID) []domain.BankFieldSpec {
	specs, ok := fields[id]
	if !ok {
		return []domain.BankFieldSpec{}
	}
	out := make([]domain.BankFieldSpec, len(specs))
	copy(out, specs)
	return out
}

// Name returns the display name for a bank, or "" when unknown.
func Name(id domain.BankID) string {
	return names[id]
}

// IsKnown reports whether id is one of the supported banks.
func IsKnown(id domain.BankID) bool {
	_, ok := fields[id]
	return ok
}

// List returns the bank catalogue in display order.
func List() []domain.BankInfo {
	out := make([]domain.BankInfo, 0, len(order))
	for _, id := range order {
		out = append(out, domain.BankInfo{ID: id, Name: names[id]})
	}
	return out
}
