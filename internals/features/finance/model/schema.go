package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{
			&FeeTypeModel{}, &FeeStructureModel{}, &FeeInvoiceModel{}, &FeeInvoiceItemModel{},
			&PaymentModel{}, &PaymentGatewayEventModel{}, &DiscountModel{}, &StudentDiscountModel{},
			&ExpenseModel{}, &SalaryModel{},
		},
		ForeignKeys: []database.ForeignKey{
			fk("fee_structures", "fee_structure_class_id", "classes", "class_id", cascade),
			fk("fee_structures", "fee_structure_fee_type_id", "fee_types", "fee_type_id", cascade),
			fk("fee_structures", "fee_structure_academic_year_id", "academic_years", "academic_year_id", cascade),

			fk("fee_invoices", "fee_invoice_student_id", "students", "student_id", cascade),
			fk("fee_invoices", "fee_invoice_academic_year_id", "academic_years", "academic_year_id", cascade),
			fk("fee_invoices", "fee_invoice_created_by", "users", "user_id", setNull),
			fk("fee_invoice_items", "fee_invoice_item_invoice_id", "fee_invoices", "fee_invoice_id", cascade),
			fk("fee_invoice_items", "fee_invoice_item_fee_type_id", "fee_types", "fee_type_id", cascade),

			fk("payments", "payment_invoice_id", "fee_invoices", "fee_invoice_id", cascade),
			fk("payments", "payment_received_by", "users", "user_id", setNull),
			fk("payment_gateway_events", "gateway_event_payment_id", "payments", "payment_id", setNull),

			fk("student_discounts", "student_discount_student_id", "students", "student_id", cascade),
			fk("student_discounts", "student_discount_discount_id", "discounts", "discount_id", cascade),
			fk("student_discounts", "student_discount_academic_year_id", "academic_years", "academic_year_id", cascade),
			fk("student_discounts", "student_discount_approved_by", "users", "user_id", setNull),

			fk("expenses", "expense_created_by", "users", "user_id", setNull),
			fk("expenses", "expense_approved_by", "users", "user_id", setNull),

			fk("salaries", "salary_staff_id", "staff", "staff_id", cascade),
			fk("salaries", "salary_processed_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("fee_structures", "ck_fee_structures_due_day", "fee_structure_due_day BETWEEN 1 AND 28"),
			database.Check("fee_invoices", "ck_fee_invoices_due_after_date", "fee_invoice_due_date >= fee_invoice_date"),
			database.Check("payments", "ck_payments_amount_positive", "payment_amount > 0"),
			database.Check("discounts", "ck_discounts_percentage",
				"discount_type <> 'PERCENTAGE' OR discount_value <= 100"),
			database.Check("salaries", "ck_salaries_month", "salary_month BETWEEN 1 AND 12"),
		},
	}
}
