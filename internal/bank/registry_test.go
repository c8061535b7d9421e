package bank_test

import (
	"reflect"
	"testing"

	"github.com/wpbrasil/boleto-gateway-go/internal/bank"
	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
)

func keys(specs []domain.BankFieldSpec) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Key)
	}
	return out
}

func TestFieldsFor_KnownBanks(t *testing.T) {
	tests := []struct {
		bank domain.BankID
		want []string
	}{
		{domain.BankBB, []string{"agencia", "conta", "convenio", "contrato", "carteira", "variacao_carteira", "formatacao_convenio", "formatacao_nosso_numero"}},
		{domain.BankBradesco, []string{"agencia", "agencia_dv", "conta", "conta_dv", "conta_cedente", "conta_cedente_dv", "carteira"}},
		{domain.BankCEF, []string{"agencia", "conta", "conta_dv", "conta_cedente", "conta_cedente_dv", "carteira", "inicio_nosso_numero"}},
		{domain.BankCEFSigcb, []string{"agencia", "conta", "conta_dv", "conta_cedente", "carteira"}},
		{domain.BankCEFSinco, []string{"agencia", "conta", "conta_dv", "conta_cedente", "conta_cedente_dv", "carteira"}},
		{domain.BankHSBC, []string{"codigo_cedente", "carteira"}},
		{domain.BankItau, []string{"agencia", "conta", "conta_dv", "carteira"}},
		{domain.BankNossaCaixa, []string{"agencia", "conta_cedente", "conta_cedente_dv", "carteira", "modalidade_conta"}},
		{domain.BankReal, []string{"agencia", "conta", "carteira"}},
		{domain.BankSantander, []string{"codigo_cliente", "ponto_venda", "carteira", "carteira_descricao"}},
		{domain.BankUnibanco, []string{"agencia", "conta", "conta_dv", "codigo_cliente", "carteira"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bank), func(t *testing.T) {
			got := keys(bank.FieldsFor(tt.bank))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("field keys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldsFor_UnknownBank(t *testing.T) {
	for _, id := range []domain.BankID{domain.BankNone, "0", "citibank"} {
		if got := bank.FieldsFor(id); len(got) != 0 {
			t.Errorf("FieldsFor(%q) = %d fields, want empty", id, len(got))
		}
	}
}

func TestFieldsFor_IsPure(t *testing.T) {
	first := bank.FieldsFor(domain.BankBradesco)
	second := bank.FieldsFor(domain.BankBradesco)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two calls returned different sequences")
	}

	// Mutating the returned slice must not leak into the registry.
	first[0].Key = "hacked"
	third := bank.FieldsFor(domain.BankBradesco)
	if third[0].Key != "agencia" {
		t.Errorf("registry mutated through returned slice: %q", third[0].Key)
	}
}

func TestFieldsFor_Defaults(t *testing.T) {
	tests := []struct {
		bank domain.BankID
		key  string
		want string
	}{
		{domain.BankBB, "formatacao_nosso_numero", "2"},
		{domain.BankCEF, "carteira", "SR"},
		{domain.BankCEF, "inicio_nosso_numero", "80"},
		{domain.BankCEFSigcb, "carteira", "SR"},
		{domain.BankCEFSinco, "carteira", "SR"},
		{domain.BankHSBC, "carteira", "CNR"},
		{domain.BankSantander, "carteira_descricao", "COBRANÇA SIMPLES - CSR"},
	}

	for _, tt := range tests {
		found := false
		for _, spec := range bank.FieldsFor(tt.bank) {
			if spec.Key == tt.key {
				found = true
				if spec.Default != tt.want {
					t.Errorf("%s/%s default = %q, want %q", tt.bank, tt.key, spec.Default, tt.want)
				}
			}
		}
		if !found {
			t.Errorf("%s has no field %q", tt.bank, tt.key)
		}
	}
}

func TestList(t *testing.T) {
	list := bank.List()
	if len(list) != 11 {
		t.Fatalf("expected 11 banks, got %d", len(list))
	}
	if list[0].ID != domain.BankBB || list[0].Name != "Banco do Brasil" {
		t.Errorf("unexpected first entry: %+v", list[0])
	}
	for _, info := range list {
		if !bank.IsKnown(info.ID) {
			t.Errorf("listed bank %q not known to registry", info.ID)
		}
		if len(bank.FieldsFor(info.ID)) == 0 {
			t.Errorf("listed bank %q has empty field set", info.ID)
		}
	}
}
