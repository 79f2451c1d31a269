/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"testing"

	"github.com/google/uuid"
	"github.com/voedger/clustersingleton/pkg/goutils/testingu"
	"github.com/voedger/clustersingleton/pkg/ielections"
)

func TestElectionsOverMemStorage(t *testing.T) {
	ielections.ElectionsTestSuite(t, Provide(testingu.MockTime), ielections.TestDataGen[string, string]{
		NextKey: uuid.NewString,
		NextVal: uuid.NewString,
	})
}
