package taxonomy

// ItemType is the legacy numeric item classification stored on templates.
type ItemType int

// Item types. Gaps in the numbering are intentional and match stored content.
const (
	ItemTypeLight            ItemType = 1
	ItemTypeScroll           ItemType = 2
	ItemTypeWand             ItemType = 3
	ItemTypeStaff            ItemType = 4
	ItemTypeWeapon           ItemType = 5
	ItemTypeShears           ItemType = 6
	ItemTypeFile             ItemType = 7
	ItemTypeTreasure         ItemType = 8
	ItemTypeArmor            ItemType = 9
	ItemTypePotion           ItemType = 10
	ItemTypeClothing         ItemType = 11
	ItemTypeFurniture        ItemType = 12
	ItemTypeTrash            ItemType = 13
	ItemTypeContainer        ItemType = 15
	ItemTypeDye              ItemType = 16
	ItemTypeDrinkCon         ItemType = 17
	ItemTypeKey              ItemType = 18
	ItemTypeFood             ItemType = 19
	ItemTypeMoney            ItemType = 20
	ItemTypeLapidary         ItemType = 21
	ItemTypeBoat             ItemType = 22
	ItemTypeCorpseNPC        ItemType = 23
	ItemTypeCorpsePC         ItemType = 24
	ItemTypeFountain         ItemType = 25
	ItemTypePill             ItemType = 26
	ItemTypeStove            ItemType = 27
	ItemTypeMap              ItemType = 28
	ItemTypePortal           ItemType = 29
	ItemTypeWarpStone        ItemType = 30
	ItemTypeRoomKey          ItemType = 31
	ItemTypeGem              ItemType = 32
	ItemTypeJewelry          ItemType = 33
	ItemTypePen              ItemType = 35
	ItemTypePaper            ItemType = 36
	ItemTypeSkin             ItemType = 37
	ItemTypeScry             ItemType = 38
	ItemTypeThievesTools     ItemType = 39
	ItemTypeBandage          ItemType = 40
	ItemTypeSalve            ItemType = 41
	ItemTypeHerb             ItemType = 42
	ItemTypeMiningTool       ItemType = 43
	ItemTypeFishPole         ItemType = 44
	ItemTypeSieve            ItemType = 45
	ItemTypeAlchemyLab       ItemType = 46
	ItemTypeMissile          ItemType = 47
	ItemTypePuddle           ItemType = 48
	ItemTypeTracks           ItemType = 49
	ItemTypeAnvil            ItemType = 50
	ItemTypeLoom             ItemType = 51
	ItemTypeFire             ItemType = 52
	ItemTypeBuilding         ItemType = 53
	ItemTypeTree             ItemType = 54
	ItemTypeBlacksmithHammer ItemType = 55
	ItemTypeFigurine         ItemType = 56
	ItemTypeShipHelm         ItemType = 57
	ItemTypeAlchemyRecipe    ItemType = 58
	ItemTypeCookingRecipe    ItemType = 59
	ItemTypeBlacksmithPlans  ItemType = 60
	ItemTypeTailoringPlans   ItemType = 61
	ItemTypeFlask            ItemType = 62
	ItemTypeIngredient       ItemType = 63
	ItemTypeShovel           ItemType = 64
	ItemTypeInstrument       ItemType = 65
	ItemTypeSheath           ItemType = 67
	ItemTypePipe             ItemType = 68
	ItemTypeFlint            ItemType = 69
	ItemTypeSeed             ItemType = 70
	ItemTypePlant            ItemType = 71
	ItemTypeClanInvite       ItemType = 72
	ItemTypeChisel           ItemType = 73
	ItemTypeWorkbench        ItemType = 74
	ItemTypeMortarPestle     ItemType = 75
	ItemTypeQuiver           ItemType = 76
	ItemTypeSoul             ItemType = 77
	ItemTypeSoulContainer    ItemType = 78
	ItemTypeBait             ItemType = 79
	ItemTypeDice             ItemType = 80
	ItemTypeLongHandle       ItemType = 81 // deprecated
	ItemTypeShortHandle      ItemType = 82 // deprecated
	ItemTypeShaft            ItemType = 83
	ItemTypeArrowHead        ItemType = 84
	ItemTypeSocketGem        ItemType = 85
	ItemTypeSocketRune       ItemType = 86
	ItemTypeUtensil          ItemType = 87
	ItemTypeLock             ItemType = 88
	ItemTypePigment          ItemType = 89
	ItemTypeTome             ItemType = 91
	ItemTypeSaw              ItemType = 92
	ItemTypeFish             ItemType = 93
	ItemTypeSkillet          ItemType = 94
	ItemTypeSaucePan         ItemType = 95
	ItemTypeBakingPan        ItemType = 96
	ItemTypeGriddle          ItemType = 97
	ItemTypeStewPot          ItemType = 98
	ItemTypeStill            ItemType = 99
	ItemTypeWagon            ItemType = 100
	ItemTypeHarness          ItemType = 101
	ItemTypeUnused           ItemType = 9999
)

// DefaultItemType is what templates without an explicit type are treated as.
const DefaultItemType = ItemTypeTrash

// Valid reports whether t is one of the declared item types.
func (t ItemType) Valid() bool {
	switch {
	case t == ItemTypeUnused:
		return true
	case t < ItemTypeLight || t > ItemTypeHarness:
		return false
	case t == 14 || t == 34 || t == 66 || t == 90:
		return false
	default:
		return true
	}
}

// ParseItemType converts a stored integer into an ItemType.
// Unknown values return DefaultItemType and false.
func ParseItemType(v int) (ItemType, bool) {
	t := ItemType(v)
	if !t.Valid() {
		return DefaultItemType, false
	}
	return t, true
}
