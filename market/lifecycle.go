// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/fault"
)

// the listing and its current agreement
func (m *Market) current(op *operation, id uint64) (*Listing, *agreement.Agreement, error) {
	l, err := op.listing(id)
	if nil != err {
		return nil, nil, err
	}
	if 0 == l.AgreementId {
		return nil, nil, fault.ErrAgreementNotFound
	}
	agr, err := m.agreements.Get(op, l.AgreementId)
	if nil != err {
		return nil, nil, err
	}
	return l, agr, nil
}

// ConfirmReceipt - the buyer or renter accepts the asset
//
// releases the escrowed payment to the shareholders: a purchase pays
// the holders recorded before the sale, a lease pays the current ones
func (m *Market) ConfirmReceipt(a auth.Authoriser, caller *account.Account, id uint64, isRental bool) error {
	if err := a.RequireAuth(caller); nil != err {
		return err
	}

	return m.update(true, func(op *operation) error {
		l, agr, err := m.current(op, id)
		if nil != err {
			return err
		}
		if !agr.User.Equal(caller) {
			return fault.ErrAgreementNotOwnedByCaller
		}
		if agr.IsRental() != isRental {
			return fault.ErrAgreementTypeMismatch
		}
		e, err := m.vault.Get(op, id)
		if nil != err {
			return err
		}
		if escrow.Active != e.Status {
			return fault.ErrEscrowNotActive
		}

		token := e.Token
		payment := e.Amount

		if isRental {
			if err := m.agreements.OwnerFulfilled(op, m.self, agr.Id); nil != err {
				return err
			}
			if err := m.ownership.GrantControl(op, m.self, id, caller, agr.EndTime); nil != err {
				return err
			}
			l.Status = Rented
			putListing(op, l)

			if _, err := m.vault.Release(op, m.self, id); nil != err {
				return err
			}
			result, err := m.distributor.Distribute(op, m.self, token, id, payment, l.Creator)
			if nil != err {
				return err
			}
			op.emit(TopicDividend, dividendEvent(id, token, result))

		} else {
			before, ok := getProceeds(op, id)
			if !ok {
				return fault.ErrProceedsNotFound
			}
			if err := m.ownership.TransferAll(op, m.self, l.Creator, caller, id); nil != err {
				return err
			}
			if err := m.agreements.Complete(op, m.self, agr.Id, caller); nil != err {
				return err
			}
			l.Status = Purchased
			putListing(op, l)

			if _, err := m.vault.Release(op, m.self, id); nil != err {
				return err
			}
			result, err := m.distributor.DistributeHoldings(op, m.self, token, before.holdings, before.totalShares, payment, l.Creator)
			if nil != err {
				return err
			}
			deleteProceeds(op, id)
			op.emit(TopicDividend, dividendEvent(id, token, result))
		}

		m.log.Infof("confirm: listing: %d agreement: %d by: %s", id, agr.Id, caller)
		op.emit(TopicEscrowReleased, &EscrowEvent{
			ListingId: id,
			Amount:    payment,
			Token:     token,
		})
		op.emit(TopicConfirmed, &TradeEvent{
			ListingId:   id,
			AgreementId: agr.Id,
			Kind:        tradeKind(agr),
			Owner:       agr.Owner,
			Buyer:       caller,
			Shares:      agr.Shares,
			Amount:      payment,
			Token:       token,
			Escrowed:    true,
		})
		return nil
	})
}

// Cancel - the seller withdraws from an unconfirmed sale or rental
//
// the escrow is refunded, a sale's holdings are restored and the
// listing becomes available again
func (m *Market) Cancel(a auth.Authoriser, seller *account.Account, id uint64) error {
	if err := a.RequireAuth(seller); nil != err {
		return err
	}

	return m.update(true, func(op *operation) error {
		l, agr, err := m.current(op, id)
		if nil != err {
			return err
		}
		if err := m.agreements.Terminate(op, a, agr.Id, seller); nil != err {
			return err
		}

		e, err := m.vault.Get(op, id)
		if nil != err {
			return err
		}
		if err := m.vault.Refund(op, m.self, id); nil != err {
			return err
		}

		if !agr.IsRental() {
			before, ok := getProceeds(op, id)
			if !ok {
				return fault.ErrProceedsNotFound
			}
			if err := m.ownership.Restore(op, m.self, id, before.holdings); nil != err {
				return err
			}
			l.AvailableShares = before.availableShares
			deleteProceeds(op, id)
		}
		l.Status = Available
		putListing(op, l)

		m.log.Infof("cancel: listing: %d agreement: %d by: %s", id, agr.Id, seller)
		op.emit(TopicEscrowRefunded, &EscrowEvent{
			ListingId: id,
			Amount:    e.Amount,
			Token:     e.Token,
		})
		op.emit(TopicCancelled, &TradeEvent{
			ListingId:   id,
			AgreementId: agr.Id,
			Kind:        tradeKind(agr),
			Owner:       seller,
			Buyer:       agr.User,
			Amount:      e.Amount,
			Token:       e.Token,
			Escrowed:    true,
		})
		return nil
	})
}

// ReclaimOrReturn - end a confirmed lease and take back control
func (m *Market) ReclaimOrReturn(a auth.Authoriser, seller *account.Account, id uint64) error {
	if err := a.RequireAuth(seller); nil != err {
		return err
	}

	return m.update(true, func(op *operation) error {
		l, agr, err := m.current(op, id)
		if nil != err {
			return err
		}
		if !agr.IsRental() {
			return fault.ErrAgreementTypeMismatch
		}
		if !agr.Owner.Equal(seller) {
			return fault.ErrAgreementNotOwnedByCaller
		}
		if e, err := m.vault.Get(op, id); nil == err && escrow.Active == e.Status {
			return fault.ErrEscrowActive
		}

		if err := m.agreements.Complete(op, m.self, agr.Id, seller); nil != err {
			return err
		}
		if err := m.ownership.RevokeControl(op, m.self, id, agr.User); nil != err {
			return err
		}
		l.Status = Available
		putListing(op, l)

		m.log.Infof("reclaim: listing: %d agreement: %d by: %s", id, agr.Id, seller)
		op.emit(TopicReclaimed, &TradeEvent{
			ListingId:   id,
			AgreementId: agr.Id,
			Kind:        TradeRent,
			Owner:       seller,
			Buyer:       agr.User,
		})
		return nil
	})
}

func tradeKind(agr *agreement.Agreement) string {
	if agr.IsRental() {
		return TradeRent
	}
	return TradeBuy
}
