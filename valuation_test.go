package smartfi

import "testing"

func TestNewValuation_SingleDebit(t *testing.T) {
	b := newTestBook(t)
	addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, "", "")

	v := b.Valuation(COP)

	wantMoney(t, "TotalAssets", v.TotalAssets, 1_000_000)
	wantMoney(t, "TotalLiabilities", v.TotalLiabilities, 0)
	wantMoney(t, "NetWorth", v.NetWorth, 1_000_000)
	wantMoney(t, "Liquidity", v.Liquidity, 1_000_000)
	wantMoney(t, "BuyingPower", v.BuyingPower, 1_000_000)
}

func TestNewValuation_SingleCredit(t *testing.T) {
	b := newTestBook(t)
	addAccount(t, b, "Visa", Credit, COP, 200_000, 1_000_000, "", "")

	v := b.Valuation(COP)

	wantMoney(t, "TotalAssets", v.TotalAssets, 0)
	wantMoney(t, "TotalLiabilities", v.TotalLiabilities, 200_000)
	wantMoney(t, "NetWorth", v.NetWorth, -200_000)
	wantMoney(t, "Liquidity", v.Liquidity, 0)
	wantMoney(t, "CreditLimitTotal", v.CreditLimitTotal, 1_000_000)
	// no liquid funds, but 800,000 of unused credit
	wantMoney(t, "BuyingPower", v.BuyingPower, 800_000)
}

func TestNewValuation_MixedCurrencies(t *testing.T) {
	b := newTestBook(t) // 4000 COP per USD
	addAccount(t, b, "Savings", Debit, COP, 2_000_000, 0, "", "")
	addAccount(t, b, "Broker", Debit, USD, 100, 0, "", "")
	addAccount(t, b, "Visa", Credit, COP, 400_000, 1_200_000, "", "")

	t.Run("in COP", func(t *testing.T) {
		v := b.Valuation(COP)
		wantMoney(t, "TotalAssets", v.TotalAssets, 2_400_000)
		wantMoney(t, "TotalLiabilities", v.TotalLiabilities, 400_000)
		wantMoney(t, "NetWorth", v.NetWorth, 2_000_000)
		wantMoney(t, "BuyingPower", v.BuyingPower, 2_400_000+1_200_000-400_000)
	})

	t.Run("in USD", func(t *testing.T) {
		v := b.Valuation(USD)
		wantMoney(t, "TotalAssets", v.TotalAssets, 600)
		wantMoney(t, "TotalLiabilities", v.TotalLiabilities, 100)
		wantMoney(t, "NetWorth", v.NetWorth, 500)
	})
}

func TestNewValuation_Properties(t *testing.T) {
	b := newTestBook(t)
	addAccount(t, b, "Cash", Debit, COP, 123_456, 0, "", "")
	addAccount(t, b, "Wallet", Debit, USD, 78, 0, "", "")
	addAccount(t, b, "Visa", Credit, COP, 90_000, 500_000, "", "")
	addAccount(t, b, "Master", Credit, USD, 12, 1_000, "", "")

	for _, target := range []Currency{COP, USD} {
		v := b.Valuation(target)

		// net worth is always assets minus liabilities
		if want := v.TotalAssets.Sub(v.TotalLiabilities); !v.NetWorth.Equal(want) {
			t.Errorf("NetWorth(%s) = %v, want assets-liabilities = %v", target, v.NetWorth, want)
		}
		// only debit accounts count as liquid
		if !v.Liquidity.Equal(v.TotalAssets) {
			t.Errorf("Liquidity(%s) = %v, want %v", target, v.Liquidity, v.TotalAssets)
		}
		// buying power is liquidity plus unused credit
		if want := v.Liquidity.Add(v.CreditLimitTotal.Sub(v.TotalLiabilities)); !v.BuyingPower.Equal(want) {
			t.Errorf("BuyingPower(%s) = %v, want %v", target, v.BuyingPower, want)
		}
	}
}

func TestNetValue_Scoped(t *testing.T) {
	b := newTestBook(t)
	g := b.AddGroup("Banks")
	addAccount(t, b, "Savings", Debit, COP, 1_000_000, 0, g.ID, "")
	addAccount(t, b, "Visa", Credit, COP, 300_000, 0, g.ID, "")
	addAccount(t, b, "Mattress", Debit, COP, 50_000, 0, "", "")

	var inGroup []Account
	for _, a := range b.Accounts() {
		if a.GroupID == g.ID {
			inGroup = append(inGroup, a)
		}
	}
	got := NetValue(inGroup, b.Settings.Rates(), COP)
	wantMoney(t, "NetValue(group)", got, 700_000)
}
