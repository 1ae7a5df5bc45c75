package contract

import "facthunt/sdk"

// Compact big-endian binary codec for stored records. Strings and slices are
// length-prefixed with an unsigned varint. Decoders flag truncation instead of
// panicking so corrupt state surfaces as an abort, not a wasm trap.

type binWriter struct {
	buf []byte
}

func (w *binWriter) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *binWriter) writeU64(v uint64) {
	w.buf = append(w.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (w *binWriter) writeI64(v int64) {
	w.writeU64(uint64(v))
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeI64(int64(v))
}

func (w *binWriter) writeUvarint(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

func (w *binWriter) writeString(s string) {
	w.writeUvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

func (w *binWriter) String() string {
	return string(w.buf)
}

type binReader struct {
	buf  []byte
	pos  int
	fail bool
}

func newBinReader(s string) *binReader {
	return &binReader{buf: []byte(s)}
}

func (r *binReader) readByte() byte {
	if r.pos >= len(r.buf) {
		r.fail = true
		return 0
	}
	b := r.buf[r.pos]
	r.pos++
	return b
}

func (r *binReader) readBool() bool {
	return r.readByte() != 0
}

func (r *binReader) readU64() uint64 {
	if r.pos+8 > len(r.buf) {
		r.fail = true
		return 0
	}
	b := r.buf[r.pos:]
	r.pos += 8
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func (r *binReader) readI64() int64 {
	return int64(r.readU64())
}

func (r *binReader) readAmount() Amount {
	return Amount(r.readI64())
}

func (r *binReader) readUvarint() uint64 {
	var v uint64
	var shift uint
	for {
		b := r.readByte()
		if r.fail {
			return 0
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v
		}
		shift += 7
		if shift > 63 {
			r.fail = true
			return 0
		}
	}
}

func (r *binReader) readString() string {
	n := int(r.readUvarint())
	if r.fail || r.pos+n > len(r.buf) {
		r.fail = true
		return ""
	}
	s := string(r.buf[r.pos : r.pos+n])
	r.pos += n
	return s
}

func (r *binReader) readAddress() sdk.Address {
	return sdk.Address(r.readString())
}

func (r *binReader) ok() bool {
	return !r.fail
}

// -----------------------------------------------------------------------------
// Record codecs
// -----------------------------------------------------------------------------

func encodeQuestion(q *Question) string {
	w := &binWriter{}
	w.writeU64(q.ID)
	w.writeByte(byte(q.Type))
	w.writeAddress(q.Seeker)
	w.writeString(q.Description)
	w.writeString(q.BountyAsset.String())
	w.writeAmount(q.BountyAmount)
	w.writeString(q.Tx)
	return w.String()
}

func decodeQuestion(s string) (*Question, bool) {
	r := newBinReader(s)
	q := &Question{}
	q.ID = r.readU64()
	q.Type = QuestionType(r.readByte())
	q.Seeker = r.readAddress()
	q.Description = r.readString()
	q.BountyAsset = sdk.Asset(r.readString())
	q.BountyAmount = r.readAmount()
	q.Tx = r.readString()
	return q, r.ok()
}

func encodeSlot(s *SlotData) string {
	w := &binWriter{}
	w.writeI64(s.StartHuntAt)
	w.writeI64(s.EndHuntAt)
	w.writeByte(s.AnswerID)
	w.writeByte(s.Overthrown)
	w.writeByte(s.AnswerCount)
	w.writeBool(s.Challenged)
	w.writeBool(s.ChallengeSucceeded)
	w.writeBool(s.Overridden)
	w.writeBool(s.Finalized)
	w.writeBool(s.DaoSettled)
	w.writeAddress(s.DaoSettler)
	return w.String()
}

func decodeSlot(data string) (*SlotData, bool) {
	r := newBinReader(data)
	s := &SlotData{}
	s.StartHuntAt = r.readI64()
	s.EndHuntAt = r.readI64()
	s.AnswerID = r.readByte()
	s.Overthrown = r.readByte()
	s.AnswerCount = r.readByte()
	s.Challenged = r.readBool()
	s.ChallengeSucceeded = r.readBool()
	s.Overridden = r.readBool()
	s.Finalized = r.readBool()
	s.DaoSettled = r.readBool()
	s.DaoSettler = r.readAddress()
	return s, r.ok()
}

func encodeAnswer(a *Answer) string {
	w := &binWriter{}
	w.writeAddress(a.Hunter)
	w.writeString(a.Encoded)
	w.writeBool(a.ByChallenger)
	w.writeAmount(a.TotalVouched)
	return w.String()
}

func decodeAnswer(s string) (*Answer, bool) {
	r := newBinReader(s)
	a := &Answer{}
	a.Hunter = r.readAddress()
	a.Encoded = r.readString()
	a.ByChallenger = r.readBool()
	a.TotalVouched = r.readAmount()
	return a, r.ok()
}

func encodeFees(f *Fees) string {
	w := &binWriter{}
	w.writeAmount(f.Protocol)
	w.writeAmount(f.Dao)
	w.writeAmount(f.VoucherPool)
	w.writeBool(f.ProtocolClaimed)
	w.writeBool(f.DaoClaimed)
	return w.String()
}

func decodeFees(s string) (*Fees, bool) {
	r := newBinReader(s)
	f := &Fees{}
	f.Protocol = r.readAmount()
	f.Dao = r.readAmount()
	f.VoucherPool = r.readAmount()
	f.ProtocolClaimed = r.readBool()
	f.DaoClaimed = r.readBool()
	return f, r.ok()
}

func encodeLedger(l *UserLedger) string {
	w := &binWriter{}
	w.writeAmount(l.Deposited)
	w.writeUvarint(uint64(len(l.Engaged)))
	for _, qid := range l.Engaged {
		w.writeU64(qid)
	}
	return w.String()
}

func decodeLedger(s string) (*UserLedger, bool) {
	r := newBinReader(s)
	l := &UserLedger{}
	l.Deposited = r.readAmount()
	n := r.readUvarint()
	for i := uint64(0); i < n && r.ok(); i++ {
		l.Engaged = append(l.Engaged, r.readU64())
	}
	return l, r.ok()
}

func encodeVouch(v *VouchRecord) string {
	w := &binWriter{}
	w.writeAmount(v.Amount)
	w.writeBool(v.Claimed)
	w.writeBool(v.Redeemed)
	return w.String()
}

func decodeVouch(s string) (*VouchRecord, bool) {
	r := newBinReader(s)
	v := &VouchRecord{}
	v.Amount = r.readAmount()
	v.Claimed = r.readBool()
	v.Redeemed = r.readBool()
	return v, r.ok()
}

func encodeContractConfig(c *ContractConfig) string {
	w := &binWriter{}
	w.writeAddress(c.Owner)
	w.writeAddress(c.Council)
	w.writeAddress(c.FeeReceiver)
	return w.String()
}

func decodeContractConfig(s string) (*ContractConfig, bool) {
	r := newBinReader(s)
	c := &ContractConfig{}
	c.Owner = r.readAddress()
	c.Council = r.readAddress()
	c.FeeReceiver = r.readAddress()
	return c, r.ok()
}

func encodeSystemConfig(c *SystemConfig) string {
	w := &binWriter{}
	w.writeAmount(c.MinHuntStake)
	w.writeAmount(c.MinDaoStake)
	w.writeAmount(c.MinVouchAmount)
	w.writeU64(c.HuntPeriodSecs)
	w.writeU64(c.ChallengePeriodSecs)
	w.writeU64(c.SettlePeriodSecs)
	w.writeU64(c.ReviewPeriodSecs)
	w.writeAmount(c.ChallengeCost)
	return w.String()
}

func decodeSystemConfig(s string) (*SystemConfig, bool) {
	r := newBinReader(s)
	c := &SystemConfig{}
	c.MinHuntStake = r.readAmount()
	c.MinDaoStake = r.readAmount()
	c.MinVouchAmount = r.readAmount()
	c.HuntPeriodSecs = r.readU64()
	c.ChallengePeriodSecs = r.readU64()
	c.SettlePeriodSecs = r.readU64()
	c.ReviewPeriodSecs = r.readU64()
	c.ChallengeCost = r.readAmount()
	return c, r.ok()
}

func encodeDistributionConfig(c *DistributionConfig) string {
	w := &binWriter{}
	w.writeU64(c.HunterBP)
	w.writeU64(c.VoucherBP)
	return w.String()
}

func decodeDistributionConfig(s string) (*DistributionConfig, bool) {
	r := newBinReader(s)
	c := &DistributionConfig{}
	c.HunterBP = r.readU64()
	c.VoucherBP = r.readU64()
	return c, r.ok()
}

func encodeChallengeConfig(c *ChallengeConfig) string {
	w := &binWriter{}
	w.writeU64(c.HunterSlashPct)
	w.writeU64(c.VoucherSlashPct)
	w.writeU64(c.DaoSlashPct)
	w.writeU64(c.DaoReviewFeePct)
	return w.String()
}

func decodeChallengeConfig(s string) (*ChallengeConfig, bool) {
	r := newBinReader(s)
	c := &ChallengeConfig{}
	c.HunterSlashPct = r.readU64()
	c.VoucherSlashPct = r.readU64()
	c.DaoSlashPct = r.readU64()
	c.DaoReviewFeePct = r.readU64()
	return c, r.ok()
}
