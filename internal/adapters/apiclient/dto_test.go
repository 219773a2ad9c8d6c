package apiclient

import (
	"encoding/json"
	"testing"
)

// Backend отвечает то snake_case, то историческим camelCase;
// при конфликте побеждает snake_case.
func TestOwnerDTODualNaming(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantYear int
		wantDesc string
	}{
		{
			name:     "snake only",
			raw:      `{"id":101,"name":"Ion Popescu","account_created_year":2020,"profile_description":"verificat"}`,
			wantYear: 2020,
			wantDesc: "verificat",
		},
		{
			name:     "camel only",
			raw:      `{"id":101,"name":"Ion Popescu","accountCreatedYear":2019,"profileDescription":"vechi format"}`,
			wantYear: 2019,
			wantDesc: "vechi format",
		},
		{
			name:     "snake wins over camel",
			raw:      `{"id":101,"name":"Ion Popescu","account_created_year":2020,"accountCreatedYear":2015,"profile_description":"nou","profileDescription":"vechi"}`,
			wantYear: 2020,
			wantDesc: "nou",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dto ownerDTO
			if err := json.Unmarshal([]byte(tt.raw), &dto); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			owner := dto.toDomain()
			if owner.AccountCreatedYear != tt.wantYear {
				t.Errorf("AccountCreatedYear = %d; want %d", owner.AccountCreatedYear, tt.wantYear)
			}
			if owner.ProfileDescription != tt.wantDesc {
				t.Errorf("ProfileDescription = %q; want %q", owner.ProfileDescription, tt.wantDesc)
			}
		})
	}
}

func TestPropertyDetailsDTODualNaming(t *testing.T) {
	raw := `{"id":1,"title":"Apartament","monthly_cost":"1.200 RON/lună","monthlyCost":"999 RON/lună","owner":{"id":101,"name":"Ion"}}`

	var dto propertyDetailsDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	details := dto.toDomain()
	if details.MonthlyCost != "1.200 RON/lună" {
		t.Errorf("MonthlyCost = %q; want snake_case value", details.MonthlyCost)
	}
}

func TestPropertyDetailsDTOCamelFallback(t *testing.T) {
	raw := `{"id":2,"title":"Apartament","monthlyCost":"850 RON/lună","owner":{"id":102,"name":"Maria"}}`

	var dto propertyDetailsDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if details := dto.toDomain(); details.MonthlyCost != "850 RON/lună" {
		t.Errorf("MonthlyCost = %q; want camelCase fallback", details.MonthlyCost)
	}
}
