// Package kvstore stores values under lexkey keys in a Pebble database.
//
// It shows the scan-bound pattern lexkey is designed for: composite keys are
// written as-is, and all entries below a prefix are read or deleted through
// the half-open range [lexkey.First(prefix...), lexkey.Last(prefix...)).
//
//	store, err := kvstore.Open("data", kvstore.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	k, _ := lexkey.Of("orders", tenantID, int64(orderNo))
//	err = store.Put(k, payload)
//
//	err = store.ScanPrefix([][]byte{[]byte("orders"), tenantID[:]},
//	    func(k lexkey.Key, v []byte) error {
//	        ...
//	        return nil
//	    })
package kvstore
