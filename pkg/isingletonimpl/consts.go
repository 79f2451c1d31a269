/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingletonimpl

const (
	// owner of the service entity is allowed to instantiate the services of the group
	ServiceEntityType = "org.opendaylight.mdsal.ServiceEntityType"

	// owner of the close entity has confirmed the previous owner has closed its services
	CloseServiceEntityType = "org.opendaylight.mdsal.AsyncServiceCloseEntityType"
)

const (
	MetricGroupsCreated           = "singleton_groups_created_total"
	MetricGroupsRetired           = "singleton_groups_retired_total"
	MetricGroupsReborn            = "singleton_groups_reborn_total"
	MetricActivations             = "singleton_activations_total"
	MetricDeactivations           = "singleton_deactivations_total"
	MetricOwnershipChanges        = "singleton_ownership_changes_total"
	MetricOwnershipChangesDropped = "singleton_ownership_changes_dropped_total"
)

const (
	groupActive groupLifecycle = iota
	groupClosing
	groupRetired
)
