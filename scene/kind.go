package scene

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed set of node variants. Code that needs to behave
// differently per variant switches on it instead of probing for methods.
type Kind int

const (
	KindObject Kind = iota
	KindGroup
	KindScene
	KindCamera
	KindLight
	KindBone
)

var kindToString = map[Kind]string{
	KindObject: "Object3D",
	KindGroup:  "Group",
	KindScene:  "Scene",
	KindCamera: "Camera",
	KindLight:  "Light",
	KindBone:   "Bone",
}

func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindToString[k]; !ok {
		return nil, errors.Errorf("unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// looksDownNegativeZ reports kinds that point their -z axis at a LookAt target
func (k Kind) looksDownNegativeZ() bool {
	return k == KindCamera || k == KindLight
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, s := range kindToString {
		if s == string(text) {
			*k = kind
			return nil
		}
	}
	return errors.Errorf("unknown kind %q", text)
}
