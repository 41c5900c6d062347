// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/fault"
)

// Custody - where a whole purchase payment waits for settlement
type Custody int

// custody strategies
const (
	// payment held in the vault until the buyer confirms receipt
	Escrowed Custody = iota
	// payment distributed at once and the sale completed
	Direct
)

// String - strategy name
func (c Custody) String() string {
	switch c {
	case Escrowed:
		return "escrowed"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// convert a listing currency amount into the payment token
func (m *Market) normalise(op *operation, value decimal.Decimal) (decimal.Decimal, error) {
	return m.normaliser.Normalise(op, op.settings.Currency, op.settings.PaymentToken, value, op.now)
}

// Purchase - buy the whole listing, payment held in escrow
func (m *Market) Purchase(a auth.Authoriser, buyer *account.Account, id uint64) (uint64, error) {
	return m.SettlePurchase(a, buyer, id, Escrowed)
}

// PurchaseAndConfirm - buy the whole listing and settle immediately
func (m *Market) PurchaseAndConfirm(a auth.Authoriser, buyer *account.Account, id uint64) (uint64, error) {
	return m.SettlePurchase(a, buyer, id, Direct)
}

// SettlePurchase - transfer a whole listing to the buyer
//
// ownership moves to the buyer in both strategies; an escrowed sale
// keeps the seller side holdings so that cancellation can put them
// back and confirmation can pay the pre-sale owners
func (m *Market) SettlePurchase(a auth.Authoriser, buyer *account.Account, id uint64, custody Custody) (uint64, error) {
	if err := a.RequireAuth(buyer); nil != err {
		return 0, err
	}
	if Escrowed != custody && Direct != custody {
		return 0, fault.ErrInvalidItem
	}

	agreementId := uint64(0)
	err := m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if Available != l.Status {
			return fault.ErrListingNotAvailable
		}
		if !l.AllowPurchase {
			return fault.ErrPurchaseNotAllowed
		}
		if l.Creator.Equal(buyer) {
			return fault.ErrSameAccount
		}
		if _, pending := getProceeds(op, id); pending {
			return fault.ErrEscrowActive
		}

		price, err := m.normalise(op, l.Price)
		if nil != err {
			return err
		}
		if !price.IsPositive() {
			return fault.ErrInvalidPrice
		}
		token := op.settings.PaymentToken

		before := &proceeds{
			totalShares:     l.TotalShares,
			availableShares: l.AvailableShares,
			holdings:        m.ownership.Owners(op, id),
		}

		switch custody {
		case Escrowed:
			if err := m.tokens.Transfer(op, a, token, buyer, m.vault.Account(), price); nil != err {
				return err
			}
			if err := m.vault.Lock(op, m.self, id, l.Creator, buyer, token, price); nil != err {
				return err
			}
			putProceeds(op, id, before)
			op.emit(TopicEscrowLocked, &EscrowEvent{
				ListingId: id,
				Amount:    price,
				Token:     token,
			})

		case Direct:
			if err := m.tokens.Transfer(op, a, token, buyer, m.custodian, price); nil != err {
				return err
			}
			result, err := m.distributor.DistributeHoldings(op, m.self, token, before.holdings, before.totalShares, price, l.Creator)
			if nil != err {
				return err
			}
			op.emit(TopicDividend, dividendEvent(id, token, result))
		}

		if err := m.ownership.TransferAll(op, m.self, l.Creator, buyer, id); nil != err {
			return err
		}

		agreementId, err = m.agreements.Create(op, m.self, id, buyer, l.Creator, l.TotalShares, false, 0, op.now)
		if nil != err {
			return err
		}
		if Direct == custody {
			if err := m.agreements.Complete(op, m.self, agreementId, buyer); nil != err {
				return err
			}
			l.Status = Purchased
		}

		l.AgreementId = agreementId
		l.AvailableShares = 0
		putListing(op, l)

		m.log.Infof("purchase: listing: %d agreement: %d buyer: %s custody: %s", id, agreementId, buyer, custody)
		op.emit(TopicPurchase, &TradeEvent{
			ListingId:   id,
			AgreementId: agreementId,
			Kind:        TradeBuy,
			Owner:       l.Creator,
			Buyer:       buyer,
			Shares:      l.TotalShares,
			Amount:      price,
			Token:       token,
			Escrowed:    Escrowed == custody,
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return agreementId, nil
}

// PurchaseShares - buy part of a listing from one of its holders
//
// the creator may only sell shares still marked available; any
// other holder may sell up to its balance. the price is the listing
// price pro rata, truncated, and goes straight to the seller
func (m *Market) PurchaseShares(a auth.Authoriser, buyer *account.Account, seller *account.Account, id uint64, shares uint64) (uint64, error) {
	if err := a.RequireAuth(buyer); nil != err {
		return 0, err
	}

	agreementId := uint64(0)
	err := m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if 0 == shares {
			return fault.ErrZeroShares
		}
		if l.TotalShares < 1 {
			return fault.ErrListingNotAvailable
		}
		if buyer.Equal(seller) {
			return fault.ErrSameAccount
		}
		if _, pending := getProceeds(op, id); pending {
			return fault.ErrListingNotAvailable
		}

		fromCreator := l.Creator.Equal(seller)
		available := l.AvailableShares
		if !fromCreator {
			available = m.ownership.BalanceOf(op, id, seller)
		}
		if shares > available {
			return fault.ErrInsufficientSharesForSale
		}

		cost, err := amount.MulDiv(l.Price, amount.FromUint64(shares), amount.FromUint64(l.TotalShares))
		if nil != err {
			return err
		}
		price, err := m.normalise(op, cost)
		if nil != err {
			return err
		}
		token := op.settings.PaymentToken
		if price.IsPositive() {
			if err := m.tokens.Transfer(op, a, token, buyer, seller, price); nil != err {
				return err
			}
		}

		ok, err := m.ownership.TransferShares(op, m.self, seller, buyer, id, shares)
		if nil != err {
			return err
		}
		if !ok {
			return fault.ErrInsufficientSharesForSale
		}
		if fromCreator {
			l.AvailableShares -= shares
			putListing(op, l)
		}

		agreementId, err = m.agreements.Create(op, m.self, id, buyer, seller, shares, false, 0, op.now)
		if nil != err {
			return err
		}
		if err := m.agreements.Complete(op, m.self, agreementId, buyer); nil != err {
			return err
		}

		m.log.Infof("purchase shares: listing: %d shares: %d seller: %s buyer: %s", id, shares, seller, buyer)
		op.emit(TopicSharesPurchased, &TradeEvent{
			ListingId:   id,
			AgreementId: agreementId,
			Kind:        TradeBuy,
			Owner:       seller,
			Buyer:       buyer,
			Shares:      shares,
			Amount:      price,
			Token:       token,
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return agreementId, nil
}

// Rent - lock a rental payment and open a lease agreement
func (m *Market) Rent(a auth.Authoriser, renter *account.Account, id uint64, value decimal.Decimal, duration uint64) (uint64, error) {
	if err := a.RequireAuth(renter); nil != err {
		return 0, err
	}
	if err := amount.Check(value); nil != err {
		return 0, err
	}
	if !value.IsPositive() {
		return 0, fault.ErrInvalidAmount
	}
	if 0 == duration {
		return 0, fault.ErrInvalidDuration
	}

	agreementId := uint64(0)
	err := m.update(true, func(op *operation) error {
		l, err := op.listing(id)
		if nil != err {
			return err
		}
		if Available != l.Status {
			return fault.ErrListingNotAvailable
		}
		if !l.AllowRent {
			return fault.ErrRentNotAllowed
		}
		if l.Creator.Equal(renter) {
			return fault.ErrSameAccount
		}
		if !agreement.ValidDuration(duration, op.now) {
			return fault.ErrInvalidDuration
		}

		payment, err := m.normalise(op, value)
		if nil != err {
			return err
		}
		if !payment.IsPositive() {
			return fault.ErrInvalidAmount
		}
		token := op.settings.PaymentToken

		if err := m.tokens.Transfer(op, a, token, renter, m.vault.Account(), payment); nil != err {
			return err
		}
		if err := m.vault.Lock(op, m.self, id, l.Creator, renter, token, payment); nil != err {
			return err
		}

		agreementId, err = m.agreements.Create(op, m.self, id, renter, l.Creator, 0, true, duration, op.now)
		if nil != err {
			return err
		}
		l.AgreementId = agreementId
		l.Status = Unavailable
		putListing(op, l)

		m.log.Infof("rent: listing: %d agreement: %d renter: %s duration: %d", id, agreementId, renter, duration)
		op.emit(TopicEscrowLocked, &EscrowEvent{
			ListingId: id,
			Amount:    payment,
			Token:     token,
		})
		op.emit(TopicPurchase, &TradeEvent{
			ListingId:   id,
			AgreementId: agreementId,
			Kind:        TradeRent,
			Owner:       l.Creator,
			Buyer:       renter,
			Amount:      payment,
			Token:       token,
			Escrowed:    true,
		})
		return nil
	})
	if nil != err {
		return 0, err
	}
	return agreementId, nil
}
