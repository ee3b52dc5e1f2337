package command

import "nvmekv/pkg/kvtypes"

// ValidateStoreFlags rejects any bit outside kvtypes.StoreFlagValidMask and
// rejects setting both MustExist and MustNotExist simultaneously.
func ValidateStoreFlags(flags kvtypes.StoreFlag) error {
	if !flags.Valid() {
		return kvtypes.ErrInvalidStoreFlags
	}
	return nil
}

// ValidateSelectHeaderOpts rejects any bit outside
// kvtypes.SelectHeaderValidMask.
func ValidateSelectHeaderOpts(opts kvtypes.SelectHeaderOpt) error {
	if !opts.Valid() {
		return kvtypes.ErrInvalidSelectHeaderOpts
	}
	return nil
}
