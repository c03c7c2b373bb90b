package domain

import "testing"

func TestServiceResult(t *testing.T) {
	ok := SuccessResult("Wallet successfully funded", map[string]string{"reference": "ref-1"})
	if !ok.Success || ok.Code != CodeOK {
		t.Errorf("SuccessResult() = %+v, want success with code %d", ok, CodeOK)
	}
	if ok.Data == nil {
		t.Error("SuccessResult() dropped data")
	}

	fail := FailureResult("Insufficient funds", CodeBadRequest)
	if fail.Success || fail.Code != CodeBadRequest {
		t.Errorf("FailureResult() = %+v, want failure with code %d", fail, CodeBadRequest)
	}

	internal := InternalResult("could not fund user wallet")
	if internal.Success || internal.Code != CodeInternal {
		t.Errorf("InternalResult() = %+v, want failure with code %d", internal, CodeInternal)
	}
}
