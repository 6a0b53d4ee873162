package data

//IOCType enumerates the indicator kinds an occurrence may carry.
//The values match the kind-qualified keys stored on occurrence documents.
type IOCType string

const (
	IPv4Type        IOCType = "IPV4"
	IPv6Type        IOCType = "IPV6"
	DomainType      IOCType = "DOMAIN"
	MD5HashType     IOCType = "MD5_HASH"
	SHAHashType     IOCType = "SHA_HASH"
	BitcoinAddrType IOCType = "BITCOIN_ADDRESS"
	EmailType       IOCType = "EMAIL"
	FilenameType    IOCType = "FILENAME"
	CVEType         IOCType = "CVE"
)

//IOCTypes lists every recognized indicator kind.
var IOCTypes = []IOCType{
	IPv4Type, IPv6Type, DomainType, MD5HashType, SHAHashType,
	BitcoinAddrType, EmailType, FilenameType, CVEType,
}

//ValidIOCType checks whether kind names a recognized indicator kind
func ValidIOCType(kind IOCType) bool {
	for _, t := range IOCTypes {
		if t == kind {
			return true
		}
	}
	return false
}

//SourceType enumerates the provenance kinds a source record may have
type SourceType string

const (
	//FeedSource marks a plain indicator feed keyed by its bare domain
	FeedSource SourceType = "FILES"

	//MISPSource marks a structured intelligence platform
	MISPSource SourceType = "MISP"

	//BucketSource marks a code hosting bucket keyed by host/user/repo
	BucketSource SourceType = "STORAGE_BUCKET"
)

//SourceRef is the provenance reference stored on each occurrence.
//(Type, Key) uniquely identifies a source record.
type SourceRef struct {
	Key  string     `bson:"key" json:"key"`
	Type SourceType `bson:"type" json:"type"`
}

//Equal checks if two SourceRefs identify the same source record
func (r SourceRef) Equal(other SourceRef) bool {
	return r.Key == other.Key && r.Type == other.Type
}

//SourceRefSet is a set of SourceRefs containing at most one instance
//of each (Type, Key) pair. Backed by a slice since ref counts per
//indicator are expected small.
type SourceRefSet []SourceRef

//Insert adds a SourceRef to the set
func (s *SourceRefSet) Insert(ref SourceRef) {
	if s.Contains(ref) {
		return
	}
	*s = append(*s, ref)
}

//Contains checks if a given SourceRef is in the set
func (s SourceRefSet) Contains(ref SourceRef) bool {
	for i := range s {
		if s[i].Equal(ref) {
			return true
		}
	}
	return false
}
