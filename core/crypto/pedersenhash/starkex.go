package pedersenhash

import (
	"math/big"

	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/pkg/errors"
)

var ErrMessageFieldRange = errors.New("starkex message field out of range")

const (
	vaultBits      = 31
	amountBits     = 63
	nonceBits      = 31
	expirationBits = 22
)

const (
	limitOrderInstruction = 0
	transferInstruction   = 1
)

// LimitOrder is a StarkEx order in which the owner sells AmountSell of
// TokenSell from VaultSell and buys AmountBuy of TokenBuy into VaultBuy.
type LimitOrder struct {
	VaultSell           uint32 // uint31
	VaultBuy            uint32 // uint31
	AmountSell          uint64 // uint63
	AmountBuy           uint64 // uint63
	TokenSell           felt.Felt
	TokenBuy            felt.Felt
	Nonce               uint32 // uint31
	ExpirationTimestamp uint32 // uint22, in hours since the epoch
}

// Transfer is a StarkEx transfer of Amount of Token from SenderVaultID to
// ReceiverVaultID, owned by ReceiverPublicKey.
type Transfer struct {
	Amount              uint64 // uint63
	Nonce               uint32 // uint31
	SenderVaultID       uint32 // uint31
	Token               felt.Felt
	ReceiverVaultID     uint32 // uint31
	ReceiverPublicKey   felt.Felt
	ExpirationTimestamp uint32 // uint22
}

// LimitOrderMsg returns the message hash a StarkEx verifier expects to be
// signed for o.
func LimitOrderMsg(o LimitOrder) (felt.Felt, error) {
	packed, err := packMessage(limitOrderInstruction, []messageField{
		{"vault_sell", uint64(o.VaultSell), vaultBits},
		{"vault_buy", uint64(o.VaultBuy), vaultBits},
		{"amount_sell", o.AmountSell, amountBits},
		{"amount_buy", o.AmountBuy, amountBits},
		{"nonce", uint64(o.Nonce), nonceBits},
		{"expiration_timestamp", uint64(o.ExpirationTimestamp), expirationBits},
	})
	if err != nil {
		return felt.Zero, err
	}
	return messageHash(o.TokenSell, o.TokenBuy, packed)
}

// TransferMsg returns the message hash a StarkEx verifier expects to be
// signed for t. The second amount slot of a transfer is always zero.
func TransferMsg(t Transfer) (felt.Felt, error) {
	packed, err := packMessage(transferInstruction, []messageField{
		{"sender_vault_id", uint64(t.SenderVaultID), vaultBits},
		{"receiver_vault_id", uint64(t.ReceiverVaultID), vaultBits},
		{"amount", t.Amount, amountBits},
		{"", 0, amountBits},
		{"nonce", uint64(t.Nonce), nonceBits},
		{"expiration_timestamp", uint64(t.ExpirationTimestamp), expirationBits},
	})
	if err != nil {
		return felt.Zero, err
	}
	return messageHash(t.Token, t.ReceiverPublicKey, packed)
}

type messageField struct {
	name  string
	value uint64
	bits  uint
}

// packMessage concatenates instruction and fields, most significant first,
// each field taking exactly its bit width.
func packMessage(instruction uint64, fields []messageField) (felt.Felt, error) {
	packed := new(big.Int).SetUint64(instruction)
	for _, f := range fields {
		if f.value>>f.bits != 0 {
			return felt.Zero, errors.Wrapf(ErrMessageFieldRange, "%s = %d does not fit in %d bits", f.name, f.value, f.bits)
		}
		packed.Lsh(packed, f.bits)
		packed.Or(packed, new(big.Int).SetUint64(f.value))
	}
	// at most 1 + 241 bits, well below the field prime
	return felt.FromBigInt(packed), nil
}

func messageHash(token0, token1OrPubKey, packed felt.Felt) (felt.Felt, error) {
	tokens, err := HashFelts(token0, token1OrPubKey)
	if err != nil {
		return felt.Zero, errors.Wrap(err, "token hash")
	}
	return HashFelts(tokens, packed)
}
