package models

import "fmt"

// Detail and list locations for inventory objects. List paths are always
// filtered by the parent id so a related-collection link never leaks scope.

func DevicePath(id int64) string {
	return fmt.Sprintf("/dcim/devices/%d/", id)
}

func ModulePath(id int64) string {
	return fmt.Sprintf("/dcim/modules/%d/", id)
}

func ModuleBayPath(id int64) string {
	return fmt.Sprintf("/dcim/module-bays/%d/", id)
}

func DeviceTypePath(id int64) string {
	return fmt.Sprintf("/dcim/device-types/%d/", id)
}

func ModuleTypePath(id int64) string {
	return fmt.Sprintf("/dcim/module-types/%d/", id)
}

func ManufacturerPath(id int64) string {
	return fmt.Sprintf("/dcim/manufacturers/%d/", id)
}

func SitePath(id int64) string {
	return fmt.Sprintf("/dcim/sites/%d/", id)
}

func RackPath(id int64) string {
	return fmt.Sprintf("/dcim/racks/%d/", id)
}

func RolePath(id int64) string {
	return fmt.Sprintf("/dcim/device-roles/%d/", id)
}

func PlatformPath(id int64) string {
	return fmt.Sprintf("/dcim/platforms/%d/", id)
}

func TenantPath(id int64) string {
	return fmt.Sprintf("/tenancy/tenants/%d/", id)
}

func ClusterPath(id int64) string {
	return fmt.Sprintf("/virtualization/clusters/%d/", id)
}

func ClusterTypePath(id int64) string {
	return fmt.Sprintf("/virtualization/cluster-types/%d/", id)
}

func VirtualMachinePath(id int64) string {
	return fmt.Sprintf("/virtualization/virtual-machines/%d/", id)
}

func IPAddressPath(id int64) string {
	return fmt.Sprintf("/ipam/ip-addresses/%d/", id)
}

// ComponentListPath builds a list location for a component collection scoped
// to its parent, e.g. /dcim/interfaces/?device_id=42.
func ComponentListPath(section, collection, parentParam string, parentID int64) string {
	return fmt.Sprintf("/%s/%s/?%s=%d", section, collection, parentParam, parentID)
}
