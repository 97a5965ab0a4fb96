package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/core/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockSupplierRepo *MockSupplierRepository
	mockSettingsSvc  *MockSettingsSvc
	service          portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockSettingsSvc = new(MockSettingsSvc)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockSupplierRepo, suite.mockSettingsSvc, decimal.NewFromInt(10))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DerivesVatFromAccountDefault() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("110"),
		Type:        domain.ExpenseOther,
	}

	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.NetAmount.Equal(decimal.RequireFromString("100")) &&
			e.VatAmount.Equal(decimal.RequireFromString("10")) &&
			e.VatPercent.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(expense.NetAmount.Equal(decimal.RequireFromString("100")))
	suite.True(expense.VatAmount.Equal(decimal.RequireFromString("10")))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SupplierRateWinsOverAccountDefault() {
	ctx := context.Background()
	supplierRate := decimal.NewFromInt(20)
	supplierID := testSupplierID
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("1200"),
		Type:        domain.ExpenseSupplier,
		SupplierID:  &supplierID,
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, testAccountID, supplierID).Return(testSupplier(&supplierRate), nil)
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.VatPercent.Equal(supplierRate) && e.NetAmount.Equal(decimal.RequireFromString("1000"))
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(expense.VatAmount.Equal(decimal.RequireFromString("200")))
	suite.mockSettingsSvc.AssertNotCalled(suite.T(), "GetSettings")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SupplierPaymentCarriesNoVat() {
	ctx := context.Background()
	supplierID := testSupplierID
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("400"),
		Type:        domain.ExpenseSupplierPayment,
		SupplierID:  &supplierID,
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, testAccountID, supplierID).Return(testSupplier(nil), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.VatPercent.IsZero() && e.VatAmount.IsZero() &&
			e.NetAmount.Equal(decimal.RequireFromString("400")) && e.PaidNow
	})).Return(nil).Once()

	_, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PaidNowForcedForNonSupplier() {
	ctx := context.Background()
	onCredit := false
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("100"),
		Type:        domain.ExpenseOther,
		PaidNow:     &onCredit,
	}

	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.PaidNow
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(expense.PaidNow)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SupplierInvoiceCanStayOnCredit() {
	ctx := context.Background()
	onCredit := false
	supplierID := testSupplierID
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("100"),
		Type:        domain.ExpenseSupplier,
		SupplierID:  &supplierID,
		PaidNow:     &onCredit,
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, testAccountID, supplierID).Return(testSupplier(nil), nil)
	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return !e.PaidNow
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.False(expense.PaidNow)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SupplierRequiresSupplierID() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        "2024-03-10",
		GrossAmount: decimal.RequireFromString("100"),
		Type:        domain.ExpenseSupplier,
	}

	_, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ContributionsOnlyForSalary() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:                "2024-03-10",
		GrossAmount:         decimal.RequireFromString("100"),
		ContributionsAmount: decimal.RequireFromString("40"),
		Type:                domain.ExpenseOther,
	}

	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ContributionsAmount.IsZero()
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(expense.ContributionsAmount.IsZero())
}

func (suite *ExpenseServiceTestSuite) TestSetExpensePaid_OnlySupplierExpenses() {
	ctx := context.Background()
	salary := &domain.Expense{
		ExpenseID:   "e1",
		AccountID:   testAccountID,
		Type:        domain.ExpenseSalary,
		GrossAmount: decimal.RequireFromString("900"),
		PaidNow:     true,
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, testAccountID, "e1").Return(salary, nil).Once()

	_, err := suite.service.SetExpensePaid(ctx, testAccountID, "e1", false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpense")
}

func (suite *ExpenseServiceTestSuite) TestSetExpensePaid_FlipsSupplierInvoice() {
	ctx := context.Background()
	invoice := &domain.Expense{
		ExpenseID:   "e2",
		AccountID:   testAccountID,
		Type:        domain.ExpenseSupplier,
		GrossAmount: decimal.RequireFromString("500"),
		VatAmount:   decimal.RequireFromString("45.45"),
		PaidNow:     false,
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, testAccountID, "e2").Return(invoice, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		// Tax amounts stay untouched when the flag flips.
		return e.PaidNow && e.VatAmount.Equal(decimal.RequireFromString("45.45"))
	})).Return(nil).Once()

	expense, err := suite.service.SetExpensePaid(ctx, testAccountID, "e2", true)

	suite.Require().NoError(err)
	suite.True(expense.PaidNow)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RecomputesSplitOnNewGross() {
	ctx := context.Background()
	existing := &domain.Expense{
		ExpenseID:   "e3",
		AccountID:   testAccountID,
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:        domain.ExpenseOther,
		GrossAmount: decimal.RequireFromString("110"),
		NetAmount:   decimal.RequireFromString("100"),
		VatPercent:  decimal.NewFromInt(10),
		VatAmount:   decimal.RequireFromString("10"),
		PaidNow:     true,
	}
	newGross := decimal.RequireFromString("220")
	req := dto.UpdateExpenseRequest{GrossAmount: &newGross}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, testAccountID, "e3").Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.NetAmount.Equal(decimal.RequireFromString("200")) &&
			e.VatAmount.Equal(decimal.RequireFromString("20")) &&
			e.VatPercent.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	expense, err := suite.service.UpdateExpense(ctx, testAccountID, "e3", req)

	suite.Require().NoError(err)
	suite.True(expense.NetAmount.Equal(decimal.RequireFromString("200")))
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
