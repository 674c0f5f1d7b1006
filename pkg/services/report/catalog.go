package report

import "github.com/de-tools/fiscal-atlas/pkg/models/domain"

// Report type names.
const (
	NetCashFlow      = "net-cash-flow"
	FundBalances     = "fund-balances"
	Revenue          = "revenue"
	Spending         = "spending"
	Obligations      = "obligations"
	PersonalServices = "personal-services"
	Positions        = "positions"
)

// builtinDefinitions is the fixed report family. Category order mirrors the
// row order of the published tables; OCR row text is too noisy to label rows
// from, so the order is configuration.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			Name:        NetCashFlow,
			Kind:        KindCash,
			Anchor:      "TOTAL DISBURSEMENTS",
			TotalColumn: true,
			Categories: []domain.CategoryKey{
				"excess_of_receipts_over_disbursements",
				"opening_balance",
				"tran",
				"closing_balance",
			},
			ValidationGroups: []domain.ValidationGroup{
				{
					Total: "closing_balance",
					Categories: []domain.CategoryKey{
						"excess_of_receipts_over_disbursements",
						"opening_balance",
						"tran",
					},
				},
			},
			Formatting: domain.FormattingTable{
				"tran":                                  "TRAN",
				"closing_balance":                       "Closing Balance",
				"excess_of_receipts_over_disbursements": "Receipts - Disbursements",
				"opening_balance":                       "Opening Balance",
			},
		},
		{
			Name:        Revenue,
			Kind:        KindCash,
			Anchor:      "CASH RECEIPTS",
			StopAnchor:  "CASH DISBURSEMENTS",
			TotalColumn: true,
			Categories: []domain.CategoryKey{
				"real_estate_tax",
				"total_wage_earnings_net_profits",
				"realty_transfer_tax",
				"sales_tax",
				"business_income_and_receipts_tax",
				"beverage_tax",
				"other_taxes",
				"locally_generated_nontax",
				"total_other_governments",
				"total_pica_other_governments",
				"total_current_revenue",
				"collection_of_prior_year_revenue",
				"interfund_transfers",
				"other_fund_balance_adjustments",
				"total_cash_receipts",
			},
			ValidationGroups: []domain.ValidationGroup{
				{
					Total: "total_current_revenue",
					Categories: []domain.CategoryKey{
						"real_estate_tax",
						"total_wage_earnings_net_profits",
						"realty_transfer_tax",
						"sales_tax",
						"business_income_and_receipts_tax",
						"beverage_tax",
						"other_taxes",
						"locally_generated_nontax",
						"total_other_governments",
					},
				},
				{
					Total: "total_cash_receipts",
					Categories: []domain.CategoryKey{
						"total_current_revenue",
						"collection_of_prior_year_revenue",
						"interfund_transfers",
						"other_fund_balance_adjustments",
					},
				},
			},
			Formatting: domain.FormattingTable{
				"real_estate_tax":                  "Real Estate Tax",
				"wage_earnings_net_profits":        "Wage, Earnings, Net Profits",
				"total_wage_earnings_net_profits":  "Wage, Earnings, Net Profits",
				"realty_transfer_tax":              "Realty Transfer Tax",
				"sales_tax":                        "Sales Tax",
				"business_income_and_receipts_tax": "BIRT",
				"beverage_tax":                     "Beverage Tax",
				"total_pica_other_governments":     "PICA Other Governments",
				"total_other_governments":          "Other Governments",
				"total_cash_receipts":              "Total Cash Receipts",
				"locally_generated_nontax":         "Locally Generated Non-Tax",
				"other_taxes":                      "Other Taxes",
				"collection_of_prior_year_revenue": "Prior Year Revenue",
				"interfund_transfers":              "Interfund Transfers",
				"other_fund_balance_adjustments":   "Other Adjustments",
				"total_current_revenue":            "Total Current Revenue",
			},
		},
		{
			Name:        Spending,
			Kind:        KindCash,
			Anchor:      "CASH DISBURSEMENTS",
			StopAnchor:  "TOTAL DISBURSEMENTS",
			TotalColumn: true,
			Categories: []domain.CategoryKey{
				"payroll",
				"employee_benefits",
				"pension",
				"purchases_of_services",
				"materials_equipment",
				"contributions_indemnities",
				"debt_service_short",
				"debt_service_long",
				"current_year_appropriation",
				"prior_year_encumbrances",
				"prior_year_vouchers_payable",
				"interfund_charges",
				"advances_misc_payments",
				"total_disbursements",
			},
			ValidationGroups: []domain.ValidationGroup{
				{
					Total: "current_year_appropriation",
					Categories: []domain.CategoryKey{
						"payroll",
						"employee_benefits",
						"pension",
						"purchases_of_services",
						"materials_equipment",
						"contributions_indemnities",
						"debt_service_short",
						"debt_service_long",
					},
				},
				{
					Total: "total_disbursements",
					Categories: []domain.CategoryKey{
						"current_year_appropriation",
						"prior_year_encumbrances",
						"prior_year_vouchers_payable",
						"interfund_charges",
						"advances_misc_payments",
					},
				},
			},
			Formatting: domain.FormattingTable{
				"payroll":                     "Payroll",
				"employee_benefits":           "Employee Benefits",
				"pension":                     "Pension",
				"purchases_of_services":       "Contracts / Leases",
				"materials_equipment":         "Materials / Equipment",
				"contributions_indemnities":   "Contributions / Indemnities",
				"advances_misc_payments":      "Advances / Labor Obligations",
				"debt_service_long":           "Long-Term Debt Service",
				"debt_service_short":          "Short-Term Debt Service",
				"current_year_appropriation":  "Current Year Appropriation",
				"total_disbursements":         "Total Disbursements",
				"prior_year_encumbrances":     "Prior Year Encumbrances",
				"prior_year_vouchers_payable": "Prior Year Vouchers Payable",
				"interfund_charges":           "Interfund Charges",
			},
		},
		{
			Name:        FundBalances,
			Kind:        KindCash,
			Anchor:      "EQUITY IN FUND BALANCES",
			TotalColumn: true,
			Categories: []domain.CategoryKey{
				"general",
				"community_development",
				"vehicle_rental_tax",
				"hospital_assessment_fund",
				"housing_trust_fund",
				"budget_stabilization_fund",
				"other_funds",
				"total_operating_funds",
				"capital_improvement",
				"industrial_and_commercial_dev",
				"total_capital_funds",
				"grants_revenue",
				"total_fund_equity",
			},
			ValidationGroups: []domain.ValidationGroup{
				{
					Total: "total_operating_funds",
					Categories: []domain.CategoryKey{
						"general",
						"community_development",
						"vehicle_rental_tax",
						"hospital_assessment_fund",
						"housing_trust_fund",
						"budget_stabilization_fund",
						"other_funds",
					},
				},
				{
					Total: "total_capital_funds",
					Categories: []domain.CategoryKey{
						"capital_improvement",
						"industrial_and_commercial_dev",
					},
				},
				{
					Total: "total_fund_equity",
					Categories: []domain.CategoryKey{
						"total_operating_funds",
						"total_capital_funds",
						"grants_revenue",
					},
				},
			},
			Formatting: domain.FormattingTable{
				"general":                       "General Fund",
				"community_development":         "Community Development",
				"hospital_assessment_fund":      "Hospital Assessment Fund",
				"housing_trust_fund":            "Housing Trust Fund",
				"budget_stabilization_fund":     "Budget Stabilization Fund",
				"other_funds":                   "Other Funds",
				"total_operating_funds":         "Total Operating Funds",
				"capital_improvement":           "Capital Improvement",
				"industrial_and_commercial_dev": "Industrial and Commercial Development",
				"total_capital_funds":           "Total Capital Funds",
				"grants_revenue":                "Grants Fund",
				"total_fund_equity":             "Consolidated Cash",
				"vehicle_rental_tax":            "Vehicle Rental Tax",
				"transportation_fund":           "Transportation Fund",
			},
		},
		{
			Name: Obligations,
			Kind: KindDepartment,
			DedupPolicies: []domain.DedupPolicy{
				domain.LatestFinalWins,
				domain.OneBudgetRowPerFilingYear,
			},
		},
		{
			Name: PersonalServices,
			Kind: KindDepartment,
			DedupPolicies: []domain.DedupPolicy{
				domain.LatestFinalWins,
				domain.OneBudgetRowPerFilingYear,
			},
		},
		{
			Name: Positions,
			Kind: KindDepartment,
			DedupPolicies: []domain.DedupPolicy{
				domain.LatestFinalWins,
				domain.OneBudgetRowPerFilingYear,
				domain.SupersedeYTDOnNewerFiling,
			},
		},
	}
}
