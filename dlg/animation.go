// radoub.dev/go/dlggff - a codec for GFF-based dialog resources
// Copyright (C) 2024  Radoub Project Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dlg

// Animation identifies one of the toolset's built-in talk animations. The
// zero value, AnimationDefault, also serves as the fallback for any
// on-disk value this package does not recognise, so an unknown
// animation id never fails decoding.
type Animation uint32

const (
	AnimationDefault         Animation = 0
	AnimationTalkNormal      Animation = 1
	AnimationTalkPleading    Animation = 2
	AnimationTalkForceful    Animation = 3
	AnimationTalkLaughing    Animation = 4
	AnimationTalkSad         Animation = 5
	AnimationGestureAgree    Animation = 6
	AnimationGestureDisagree Animation = 7
	AnimationGestureFlirt    Animation = 8
	AnimationGestureThreaten Animation = 9
	AnimationTalkInjured     Animation = 10
)

var animationNames = map[Animation]string{
	AnimationDefault:         "default",
	AnimationTalkNormal:      "talk-normal",
	AnimationTalkPleading:    "talk-pleading",
	AnimationTalkForceful:    "talk-forceful",
	AnimationTalkLaughing:    "talk-laughing",
	AnimationTalkSad:         "talk-sad",
	AnimationGestureAgree:    "gesture-agree",
	AnimationGestureDisagree: "gesture-disagree",
	AnimationGestureFlirt:    "gesture-flirt",
	AnimationGestureThreaten: "gesture-threaten",
	AnimationTalkInjured:     "talk-injured",
}

func (a Animation) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return "unknown"
}

// ValidateAnimation maps a raw on-disk animation id to a known Animation,
// reporting false (and AnimationDefault) when the id is not recognised.
func ValidateAnimation(raw uint32) (Animation, bool) {
	a := Animation(raw)
	_, ok := animationNames[a]
	if !ok {
		return AnimationDefault, false
	}
	return a, true
}
