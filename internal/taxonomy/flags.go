package taxonomy

// ItemFlag is a token from the primary extra-flag set.
type ItemFlag string

const (
	FlagGlow           ItemFlag = "glow"
	FlagHum            ItemFlag = "hum"
	FlagDark           ItemFlag = "dark"
	FlagEmbalmed       ItemFlag = "embalmed"
	FlagCursed         ItemFlag = "cursed"
	FlagInvis          ItemFlag = "invis"
	FlagMagic          ItemFlag = "magic"
	FlagNoDrop         ItemFlag = "nodrop"
	FlagBless          ItemFlag = "bless"
	FlagAntiGood       ItemFlag = "anti_good"
	FlagAntiEvil       ItemFlag = "anti_evil"
	FlagAntiNeutral    ItemFlag = "anti_neutral"
	FlagNoRemove       ItemFlag = "noremove"
	FlagInventory      ItemFlag = "inventory" // infinite stock at shops
	FlagNoPurge        ItemFlag = "nopurge"
	FlagRotDeath       ItemFlag = "rot_death"
	FlagVisDeath       ItemFlag = "vis_death"
	FlagRotDaylight    ItemFlag = "rot_daylight"
	FlagRandomRoom     ItemFlag = "random_room"
	FlagNoLocate       ItemFlag = "nolocate"
	FlagMeltDrop       ItemFlag = "melt_drop"
	FlagHadTimer       ItemFlag = "had_timer"
	FlagSellExtract    ItemFlag = "sell_extract"
	FlagNoSac          ItemFlag = "no_sac"
	FlagBurnProof      ItemFlag = "burn_proof"
	FlagNoUncurse      ItemFlag = "nouncurse"
	FlagFireTrap       ItemFlag = "fire_trap"
	FlagGasTrap        ItemFlag = "gas_trap"
	FlagPoisonTrap     ItemFlag = "poison_trap"
	FlagDartTrap       ItemFlag = "dart_trap"
	FlagIndestructible ItemFlag = "indestructible"
	FlagAntiMagic      ItemFlag = "antimagic"
)

// ItemFlag2 is a token from the secondary extra-flag set.
type ItemFlag2 string

const (
	Flag2Hidden       ItemFlag2 = "hidden"
	Flag2WearCast     ItemFlag2 = "wear_cast"
	Flag2Epic         ItemFlag2 = "epic"
	Flag2Legendary    ItemFlag2 = "legendary"
	Flag2Artifact     ItemFlag2 = "artifact"
	Flag2QuestItem    ItemFlag2 = "quest_item"
	Flag2CanPush      ItemFlag2 = "can_push"
	Flag2CanPull      ItemFlag2 = "can_pull"
	Flag2CanPry       ItemFlag2 = "can_pry"
	Flag2CanPress     ItemFlag2 = "can_press"
	Flag2Buoyant      ItemFlag2 = "buoyant"
	Flag2Spiked       ItemFlag2 = "spiked"
	Flag2Obscure      ItemFlag2 = "obscure"
	Flag2Unique       ItemFlag2 = "unique" // at most one loaded per reboot
	Flag2ShockTrap    ItemFlag2 = "shock_trap"
	Flag2Waterproof   ItemFlag2 = "waterproof"
	Flag2Rusted       ItemFlag2 = "rusted"
	Flag2NoRecharge   ItemFlag2 = "no_recharge"
	Flag2Phylactory   ItemFlag2 = "phylactory"
	Flag2Hardstaff    ItemFlag2 = "hardstaff"
	Flag2Shillelagh   ItemFlag2 = "shillelagh"
	Flag2KeepDeath    ItemFlag2 = "keep_death"
	Flag2Mirror       ItemFlag2 = "mirror"
	Flag2ClanItem     ItemFlag2 = "clan_item"
	Flag2FuneralRites ItemFlag2 = "funeral_rites"
)

// WearFlag names a position an item can be worn or wielded at.
type WearFlag string

const (
	WearTake      WearFlag = "take"
	WearFinger    WearFlag = "finger"
	WearNeck      WearFlag = "neck"
	WearChest     WearFlag = "chest"
	WearHead      WearFlag = "head"
	WearLegs      WearFlag = "legs"
	WearFeet      WearFlag = "feet"
	WearHands     WearFlag = "hands"
	WearArms      WearFlag = "arms"
	WearShield    WearFlag = "shield"
	WearShoulders WearFlag = "shoulders"
	WearWaist     WearFlag = "waist"
	WearWrist     WearFlag = "wrist"
	WearWield     WearFlag = "wield"
	WearHold      WearFlag = "hold"
	WearFloat     WearFlag = "float"
	WearTail      WearFlag = "tail"
	WearSheath    WearFlag = "sheath"
	WearEar       WearFlag = "ear"
	WearQuiver    WearFlag = "quiver"
	WearTwoHanded WearFlag = "two_handed"
)

// WeaponFlag is a special weapon property.
type WeaponFlag string

const (
	WeaponFlagFlaming      WeaponFlag = "flaming"
	WeaponFlagFrost        WeaponFlag = "frost"
	WeaponFlagVampiric     WeaponFlag = "vampiric"
	WeaponFlagSharp        WeaponFlag = "sharp"
	WeaponFlagVorpal       WeaponFlag = "vorpal"
	WeaponFlagLifebloom    WeaponFlag = "lifebloom"
	WeaponFlagShocking     WeaponFlag = "shocking"
	WeaponFlagPoison       WeaponFlag = "poison"
	WeaponFlagLightDam     WeaponFlag = "light_dam"
	WeaponFlagNegativeDam  WeaponFlag = "negative_dam"
	WeaponFlagFireDam      WeaponFlag = "fire_dam"
	WeaponFlagColdDam      WeaponFlag = "cold_dam"
	WeaponFlagLightningDam WeaponFlag = "lightning_dam"
	WeaponFlagAirDam       WeaponFlag = "air_dam"
	WeaponFlagEarthDam     WeaponFlag = "earth_dam"
	WeaponFlagHolyDam      WeaponFlag = "holy_dam"
	WeaponFlagEnergyDam    WeaponFlag = "energy_dam"
	WeaponFlagWaterDam     WeaponFlag = "water_dam"
	WeaponFlagAntiGoblin   WeaponFlag = "anti_goblin"
	WeaponFlagAntiGiant    WeaponFlag = "anti_giant"
	WeaponFlagAntiUndead   WeaponFlag = "anti_undead"
	WeaponFlagAntiDragon   WeaponFlag = "anti_dragon"
)

var itemFlags = setOf(
	FlagGlow, FlagHum, FlagDark, FlagEmbalmed, FlagCursed, FlagInvis, FlagMagic, FlagNoDrop,
	FlagBless, FlagAntiGood, FlagAntiEvil, FlagAntiNeutral, FlagNoRemove, FlagInventory,
	FlagNoPurge, FlagRotDeath, FlagVisDeath, FlagRotDaylight, FlagRandomRoom, FlagNoLocate,
	FlagMeltDrop, FlagHadTimer, FlagSellExtract, FlagNoSac, FlagBurnProof, FlagNoUncurse,
	FlagFireTrap, FlagGasTrap, FlagPoisonTrap, FlagDartTrap, FlagIndestructible, FlagAntiMagic,
)

var itemFlags2 = setOf(
	Flag2Hidden, Flag2WearCast, Flag2Epic, Flag2Legendary, Flag2Artifact, Flag2QuestItem,
	Flag2CanPush, Flag2CanPull, Flag2CanPry, Flag2CanPress, Flag2Buoyant, Flag2Spiked,
	Flag2Obscure, Flag2Unique, Flag2ShockTrap, Flag2Waterproof, Flag2Rusted, Flag2NoRecharge,
	Flag2Phylactory, Flag2Hardstaff, Flag2Shillelagh, Flag2KeepDeath, Flag2Mirror, Flag2ClanItem,
	Flag2FuneralRites,
)

var wearFlags = setOf(
	WearTake, WearFinger, WearNeck, WearChest, WearHead, WearLegs, WearFeet, WearHands, WearArms,
	WearShield, WearShoulders, WearWaist, WearWrist, WearWield, WearHold, WearFloat, WearTail,
	WearSheath, WearEar, WearQuiver, WearTwoHanded,
)

var weaponFlags = setOf(
	WeaponFlagFlaming, WeaponFlagFrost, WeaponFlagVampiric, WeaponFlagSharp, WeaponFlagVorpal,
	WeaponFlagLifebloom, WeaponFlagShocking, WeaponFlagPoison, WeaponFlagLightDam,
	WeaponFlagNegativeDam, WeaponFlagFireDam, WeaponFlagColdDam, WeaponFlagLightningDam,
	WeaponFlagAirDam, WeaponFlagEarthDam, WeaponFlagHolyDam, WeaponFlagEnergyDam,
	WeaponFlagWaterDam, WeaponFlagAntiGoblin, WeaponFlagAntiGiant, WeaponFlagAntiUndead,
	WeaponFlagAntiDragon,
)

// ParseItemFlag returns the flag for token, or false if the token is not a primary flag.
func ParseItemFlag(token string) (ItemFlag, bool) {
	return parseToken(itemFlags, token)
}

// ParseItemFlag2 returns the flag for token, or false if the token is not a secondary flag.
func ParseItemFlag2(token string) (ItemFlag2, bool) {
	return parseToken(itemFlags2, token)
}

// ParseWearFlag returns the wear position for token, or false if unknown.
func ParseWearFlag(token string) (WearFlag, bool) {
	return parseToken(wearFlags, token)
}

// ParseWeaponFlag returns the weapon flag for token, or false if unknown.
func ParseWeaponFlag(token string) (WeaponFlag, bool) {
	return parseToken(weaponFlags, token)
}

func setOf[T ~string](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func parseToken[T ~string](set map[T]struct{}, token string) (T, bool) {
	v := T(token)
	if _, ok := set[v]; !ok {
		var zero T
		return zero, false
	}
	return v, true
}
