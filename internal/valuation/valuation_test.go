package valuation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
	"coinfolio/internal/testutil"
)

var later = testutil.FixedTime.Add(90*time.Minute + 500*time.Millisecond)

func TestQuoteFor(t *testing.T) {
	snap := testutil.TestSnapshot(t)

	t.Run("symbol_match_is_case_insensitive", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "Something Else", "btc", "1", "1")
		price, ok := QuoteFor(h, snap)
		if !ok {
			t.Fatal("expected a match on symbol")
		}
		testutil.AssertDecimal(t, "price", price, "45000")
	})

	t.Run("name_match_is_case_insensitive", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "ETHEREUM", "XYZ", "1", "1")
		price, ok := QuoteFor(h, snap)
		if !ok {
			t.Fatal("expected a match on name")
		}
		testutil.AssertDecimal(t, "price", price, "3000")
	})

	t.Run("first_match_wins", func(t *testing.T) {
		dup := models.Snapshot{
			{ID: "a", Name: "Alpha", Symbol: "dup", CurrentPrice: testutil.Dec(t, "1")},
			{ID: "b", Name: "Beta", Symbol: "dup", CurrentPrice: testutil.Dec(t, "2")},
		}
		h := testutil.NewTestHolding(t, "1", "Beta", "DUP", "1", "1")
		price, ok := QuoteFor(h, dup)
		if !ok {
			t.Fatal("expected a match")
		}
		testutil.AssertDecimal(t, "price", price, "1")
	})

	t.Run("no_match", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "Obscure", "OBS", "1", "1")
		if _, ok := QuoteFor(h, snap); ok {
			t.Error("expected no match")
		}
		if _, ok := QuoteFor(h, nil); ok {
			t.Error("expected no match against nil snapshot")
		}
	})
}

func TestReconcile(t *testing.T) {
	snap := testutil.TestSnapshot(t)

	t.Run("updates_price_and_timestamp", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "Bitcoin", "BTC", "42000", "0.25")
		got := Reconcile(h, snap, later)

		testutil.AssertDecimal(t, "last price", got.LastPrice, "45000")
		if !got.LastUpdated.Equal(later.Truncate(time.Second)) {
			t.Errorf("expected timestamp %v, got %v", later.Truncate(time.Second), got.LastUpdated)
		}
		testutil.AssertDecimal(t, "total cost", got.TotalCost, "10500")
		// input is not mutated
		testutil.AssertDecimal(t, "original last price", h.LastPrice, "42000")
	})

	t.Run("unmatched_passes_through", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "Obscure", "OBS", "2", "3")
		got := Reconcile(h, snap, later)
		if got != h {
			t.Errorf("expected holding unchanged, got %+v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		h := testutil.NewTestHolding(t, "1", "Bitcoin", "BTC", "42000", "0.25")
		once := Reconcile(h, snap, later)
		twice := Reconcile(once, snap, later.Add(time.Hour))
		if !once.LastPrice.Equal(twice.LastPrice) {
			t.Errorf("expected same last price, got %s and %s", once.LastPrice, twice.LastPrice)
		}
		twice.LastUpdated = once.LastUpdated
		if twice != once {
			t.Errorf("expected equal holdings apart from timestamp: %+v vs %+v", once, twice)
		}
	})
}

func TestReconcileAll(t *testing.T) {
	snap := testutil.TestSnapshot(t)
	holdings := []models.Holding{
		testutil.NewTestHolding(t, "a", "Bitcoin", "BTC", "42000", "0.25"),
		testutil.NewTestHolding(t, "b", "Obscure", "OBS", "2", "3"),
		testutil.NewTestHolding(t, "c", "Ethereum", "ETH", "2500", "2"),
	}

	t.Run("preserves_length_order_and_ids", func(t *testing.T) {
		got := ReconcileAll(holdings, snap, later)
		if len(got) != len(holdings) {
			t.Fatalf("expected %d holdings, got %d", len(holdings), len(got))
		}
		for i := range holdings {
			if got[i].ID != holdings[i].ID {
				t.Errorf("position %d: expected id %s, got %s", i, holdings[i].ID, got[i].ID)
			}
		}
		testutil.AssertDecimal(t, "btc", got[0].LastPrice, "45000")
		if got[1] != holdings[1] {
			t.Errorf("expected unmatched holding untouched")
		}
		testutil.AssertDecimal(t, "eth", got[2].LastPrice, "3000")
	})

	t.Run("empty_snapshot_is_noop", func(t *testing.T) {
		got := ReconcileAll(holdings, models.Snapshot{}, later)
		for i := range holdings {
			if got[i] != holdings[i] {
				t.Errorf("position %d changed against empty snapshot", i)
			}
		}
		if got := ReconcileAll(holdings, nil, later); len(got) != len(holdings) {
			t.Errorf("expected %d holdings against nil snapshot, got %d", len(holdings), len(got))
		}
	})

	t.Run("does_not_alias_input", func(t *testing.T) {
		got := ReconcileAll(holdings, models.Snapshot{}, later)
		got[0].Name = "changed"
		if holdings[0].Name != "Bitcoin" {
			t.Error("result aliases the input slice")
		}
	})
}

func TestNewHolding(t *testing.T) {
	snap := testutil.TestSnapshot(t)

	t.Run("priced_from_snapshot", func(t *testing.T) {
		h, err := NewHolding(Submission{Name: "Bitcoin", Symbol: "btc", BuyPrice: "42000", Amount: "0.25"}, snap, later)
		testutil.AssertNoError(t, err)

		if h.Symbol != "BTC" {
			t.Errorf("expected symbol BTC, got %s", h.Symbol)
		}
		if h.ID != "" {
			t.Errorf("expected id left empty, got %s", h.ID)
		}
		v := Value(h)
		testutil.AssertDecimal(t, "total cost", v.TotalCost, "10500")
		testutil.AssertDecimal(t, "last price", v.LastPrice, "45000")
		testutil.AssertDecimal(t, "current value", v.CurrentValue, "11250")
		testutil.AssertDecimal(t, "pnl", v.Pnl, "750")
		if !v.PnlPercent.Valid {
			t.Fatal("expected a pnl percent")
		}
		if got := v.PnlPercent.Decimal.Round(2); !got.Equal(decimal.RequireFromString("7.14")) {
			t.Errorf("expected pnl percent ~7.14, got %s", v.PnlPercent.Decimal)
		}
	})

	t.Run("empty_snapshot_defaults_to_buy_price", func(t *testing.T) {
		h, err := NewHolding(Submission{Name: "Bitcoin", Symbol: "BTC", BuyPrice: "42000", Amount: "0.25"}, nil, later)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "last price", h.LastPrice, "42000")
		testutil.AssertDecimal(t, "pnl", Pnl(h), "0")
	})

	t.Run("trims_input", func(t *testing.T) {
		h, err := NewHolding(Submission{Name: "  Bitcoin ", Symbol: " btc ", BuyPrice: " 1 ", Amount: "2"}, nil, later)
		testutil.AssertNoError(t, err)
		if h.Name != "Bitcoin" || h.Symbol != "BTC" {
			t.Errorf("expected trimmed name/symbol, got %q/%q", h.Name, h.Symbol)
		}
	})

	rejected := map[string]Submission{
		"zero_amount":    {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "42000", Amount: "0"},
		"negative_price": {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "-1", Amount: "1"},
		"non_numeric":    {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "abc", Amount: "1"},
		"trailing_junk":  {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "42abc", Amount: "1"},
		"empty_amount":   {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "1", Amount: ""},
		"nan":            {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "NaN", Amount: "1"},
		"infinity":       {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "Infinity", Amount: "1"},
		"blank_name":     {Name: "   ", Symbol: "BTC", BuyPrice: "1", Amount: "1"},
		"blank_symbol":   {Name: "Bitcoin", Symbol: "", BuyPrice: "1", Amount: "1"},
		"huge_exponent":  {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "1e400000", Amount: "1"},
		"tiny_exponent":  {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "1", Amount: "1e-400000"},
		"too_many_ints":  {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "1000000000000000", Amount: "1"},
		"too_precise":    {Name: "Bitcoin", Symbol: "BTC", BuyPrice: "0.0000000000000000001", Amount: "1"},
	}
	for name, sub := range rejected {
		t.Run("rejects_"+name, func(t *testing.T) {
			_, err := NewHolding(sub, snap, later)
			if !errors.Is(err, ErrInvalidSubmission) {
				t.Errorf("expected ErrInvalidSubmission, got %v", err)
			}
		})
	}
}

func TestParsePositive_Bounds(t *testing.T) {
	accepted := []string{"999999999999999", "1e14", "0.000000000000000001", "1e-18"}
	for _, s := range accepted {
		t.Run("accepts_"+s, func(t *testing.T) {
			if _, err := ParsePositive(s); err != nil {
				t.Errorf("expected %q to be accepted, got %v", s, err)
			}
		})
	}
}

func TestPnlPercent(t *testing.T) {
	t.Run("zero_basis_has_no_value", func(t *testing.T) {
		got := PnlPercent(testutil.Dec(t, "100"), decimal.Zero)
		if got.Valid {
			t.Errorf("expected no value, got %s", got.Decimal)
		}
	})

	t.Run("loss", func(t *testing.T) {
		got := PnlPercent(testutil.Dec(t, "50"), testutil.Dec(t, "200"))
		if !got.Valid {
			t.Fatal("expected a value")
		}
		testutil.AssertDecimal(t, "percent", got.Decimal, "-75")
	})
}

func TestValueArithmetic(t *testing.T) {
	h := testutil.NewTestHolding(t, "1", "Tether", "USDT", "0.9999", "1234.5678")
	h = Reconcile(h, testutil.TestSnapshot(t), later)

	v := Value(h)
	want := h.LastPrice.Mul(h.Amount)
	if !v.CurrentValue.Equal(want) {
		t.Errorf("expected current value %s, got %s", want, v.CurrentValue)
	}
	if !v.Pnl.Equal(Pnl(h)) || !v.Pnl.Equal(want.Sub(h.TotalCost)) {
		t.Errorf("expected pnl %s, got %s", want.Sub(h.TotalCost), v.Pnl)
	}
}

func TestSummarize(t *testing.T) {
	t.Run("totals", func(t *testing.T) {
		snap := testutil.TestSnapshot(t)
		holdings := ReconcileAll([]models.Holding{
			testutil.NewTestHolding(t, "a", "Bitcoin", "BTC", "42000", "0.25"),
			testutil.NewTestHolding(t, "b", "Ethereum", "ETH", "2500", "2"),
			testutil.NewTestHolding(t, "c", "Obscure", "OBS", "10", "1"),
		}, snap, later)

		totals := Summarize(holdings)
		if totals.Holdings != 3 {
			t.Errorf("expected 3 holdings, got %d", totals.Holdings)
		}
		// cost 10500 + 5000 + 10, value 11250 + 6000 + 10
		testutil.AssertDecimal(t, "total cost", totals.TotalCost, "15510")
		testutil.AssertDecimal(t, "total value", totals.TotalValue, "17260")
		testutil.AssertDecimal(t, "total pnl", totals.TotalPnl, "1750")
		if !totals.TotalPnlPercent.Valid {
			t.Fatal("expected total pnl percent")
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		totals := Summarize(nil)
		testutil.AssertDecimal(t, "total cost", totals.TotalCost, "0")
		testutil.AssertDecimal(t, "total pnl", totals.TotalPnl, "0")
		if totals.TotalPnlPercent.Valid {
			t.Error("expected no pnl percent for an empty portfolio")
		}
	})
}
