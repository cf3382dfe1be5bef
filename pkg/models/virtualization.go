package models

// ClusterRef references a virtualization cluster together with its site and
// cluster type.
type ClusterRef struct {
	ObjectRef
	Site *ObjectRef `json:"site,omitempty"`
	Type *ObjectRef `json:"type,omitempty"`
}

// VirtualMachine represents a virtual machine as read from the inventory
// store. Resource metrics are optional; nil means unset, not zero.
type VirtualMachine struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Status     Status      `json:"status"`
	Cluster    *ClusterRef `json:"cluster,omitempty"`
	Role       *ObjectRef  `json:"role,omitempty"`
	Tenant     *ObjectRef  `json:"tenant,omitempty"`
	Platform   *ObjectRef  `json:"platform,omitempty"`
	VCPUs      *int        `json:"vcpus,omitempty"`
	MemoryMB   *int        `json:"memory_mb,omitempty"`
	DiskGB     *int        `json:"disk_gb,omitempty"`
	PrimaryIP4 *IPBinding  `json:"primary_ip4,omitempty"`
	PrimaryIP6 *IPBinding  `json:"primary_ip6,omitempty"`
}

// VMDetail is the fully-resolved snapshot for a virtual machine detail view.
type VMDetail struct {
	VirtualMachine VirtualMachine      `json:"virtual_machine"`
	Collections    []RelatedCollection `json:"collections"`
}
